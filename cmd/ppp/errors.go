package main

import "errors"

// ErrConflictingOptions indicates -x/--exponential and -i/--interactive
// were both set: the two strategies are mutually exclusive.
var ErrConflictingOptions = errors.New("ppp: -x and -i are mutually exclusive")
