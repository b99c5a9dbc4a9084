package mos6502

import "github.com/pkg/errors"

// ErrOutOfRange is returned when a load or range read falls outside the
// 64KB address space.
var ErrOutOfRange = errors.New("mos6502: address range out of bounds")
