package models

import "errors"

// ErrStringListScan is returned when a stored list can not be decoded.
var ErrStringListScan = errors.New("can not scan string list")
