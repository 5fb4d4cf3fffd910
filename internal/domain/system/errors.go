package system

import "errors"

var ErrConfirmationRequired = errors.New("wiping all data requires confirm=true")
