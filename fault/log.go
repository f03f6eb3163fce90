// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

// time allowed for the log writer to drain before a panic
const panicDelay = 100 * time.Millisecond

// channel for a last attempt to log something
var log *logger.L

// Initialise - setup a log channel for critical messages
//
// logger.Initialise must already have been called
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("PANIC")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data and detach the channel
func Finalise() {
	if nil != log {
		log.Flush()
		log = nil
	}
}

// Criticalf - log a formatted critical message prefixed by the caller's position
func Criticalf(format string, arguments ...interface{}) {
	criticalf(2, format, arguments...)
}

// PanicIfError - log and panic if the error is not nil
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	s := fmt.Sprintf("%s failed with error: %v", message, err)
	criticalf(2, "%s", s)
	time.Sleep(panicDelay)
	panic(s)
}

// skip is the number of stack frames above this function
func criticalf(skip int, format string, arguments ...interface{}) {
	if _, file, line, ok := runtime.Caller(skip); ok {
		a := make([]interface{}, 2, 2+len(arguments))
		a[0] = file
		a[1] = line
		arguments = append(a, arguments...)
		format = "(%q:%d) " + format
	}
	if nil == log {
		fmt.Printf("*** "+format+"\n", arguments...)
		return
	}
	log.Criticalf(format, arguments...)
	log.Flush()
}
