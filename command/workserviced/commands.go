// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/workservice/digest"
	"github.com/bitmark-inc/workservice/fault"
	"github.com/bitmark-inc/workservice/host"
	"github.com/bitmark-inc/workservice/result"
	"github.com/bitmark-inc/workservice/service"
	"github.com/bitmark-inc/workservice/storage"
	"github.com/bitmark-inc/workservice/util"
)

// setup command handler
//
// commands that need neither the configuration nor the storage
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "refine", "r", "accumulate", "a", "process", "p", "query", "q":
		return false // defer processing until storage is open

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--memory] [--slot=N] [--define=NAME=VALUE] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version string\n\n")

		fmt.Printf("  refine HEX                 (r)      - refine one payload and display the output\n")
		fmt.Printf("\n")

		fmt.Printf("  accumulate N               (a)      - accumulate a batch of N items at the slot\n")
		fmt.Printf("\n")

		fmt.Printf("  process HEX...             (p)      - refine each payload then accumulate the batch\n")
		fmt.Printf("                                        at the slot\n")
		fmt.Printf("\n")

		fmt.Printf("  query [KEY...]             (q)      - display stored state, all keys if none given\n")
		fmt.Printf("\n")

		return true
	}
}

// service command handler
//
// commands that drive the service through the host
//
// verifier selects decoding of refine outputs as verification results
func processServiceCommand(log *logger.L, w io.Writer, h *host.Host, store storage.Lister, verifier bool, slot service.Slot, arguments []string) bool {

	command := arguments[0]
	arguments = arguments[1:]

	switch command {
	case "refine", "r":
		if 1 != len(arguments) {
			fmt.Fprintf(os.Stderr, "refine requires exactly one payload\n")
			return false
		}
		workPayload, err := util.FromHex(arguments[0])
		if nil != err {
			fmt.Fprintf(os.Stderr, "payload: %q  error: %s\n", arguments[0], err)
			return false
		}
		output := h.Refine(workPayload)
		printJson(w, describeOutput(verifier, workPayload, output))

	case "accumulate", "a":
		if 1 != len(arguments) {
			fmt.Fprintf(os.Stderr, "accumulate requires an item count\n")
			return false
		}
		itemCount, err := parseItemCount(arguments[0])
		if nil != err {
			fmt.Fprintf(os.Stderr, "item count: %q  error: %s\n", arguments[0], err)
			return false
		}
		report, err := h.Accumulate(slot, itemCount)
		return finishReport(log, w, report, err)

	case "process", "p":
		payloads := make([][]byte, 0, len(arguments))
		for _, a := range arguments {
			workPayload, err := util.FromHex(a)
			if nil != err {
				fmt.Fprintf(os.Stderr, "payload: %q  error: %s\n", a, err)
				return false
			}
			payloads = append(payloads, workPayload)
		}
		report, err := h.ProcessBatch(slot, payloads)
		return finishReport(log, w, report, err)

	case "query", "q":
		entries, err := queryState(store, arguments)
		if nil != err {
			fmt.Fprintf(os.Stderr, "query error: %s\n", err)
			return false
		}
		printJson(w, entries)

	default:
		log.Errorf("unexpected command: %q", command)
		return false
	}
	return true
}

// print a report even when the batch failed
func finishReport(log *logger.L, w io.Writer, report *host.Report, err error) bool {
	if nil != report {
		printJson(w, report)
	}
	if nil != err {
		log.Errorf("batch error: %s", err)
		fmt.Fprintf(os.Stderr, "batch error: %s\n", err)
		return false
	}
	return true
}

type refineOutput struct {
	Payload util.HexBytes  `json:"payload"`
	Output  util.HexBytes  `json:"output"`
	Code    string         `json:"code,omitempty"`
	Digest  *digest.Digest `json:"digest,omitempty"`
}

// a verification output is decoded, any other is shown raw
func describeOutput(verifier bool, workPayload []byte, output []byte) refineOutput {
	r := refineOutput{
		Payload: workPayload,
		Output:  output,
	}
	if !verifier {
		return r
	}
	code, computed, err := result.Unpack(output)
	if nil == err {
		r.Code = code.String()
		if !code.IsError() {
			r.Digest = &computed
		}
	}
	return r
}

type stateEntry struct {
	Key   string        `json:"key"`
	Found bool          `json:"found"`
	Value util.HexBytes `json:"value,omitempty"`
	Text  string        `json:"text,omitempty"`
}

// fetch the given keys, or every key of the service
func queryState(store storage.Lister, keys []string) ([]stateEntry, error) {
	entries := make([]stateEntry, 0, len(keys))

	if 0 == len(keys) {
		elements, err := store.Elements()
		if nil != err {
			return nil, err
		}
		for _, e := range elements {
			entries = append(entries, makeEntry(string(e.Key), e.Value, true))
		}
		return entries, nil
	}

	for _, k := range keys {
		value, found := store.Get([]byte(k))
		entries = append(entries, makeEntry(k, value, found))
	}
	return entries, nil
}

func makeEntry(key string, value []byte, found bool) stateEntry {
	entry := stateEntry{
		Key:   key,
		Found: found,
		Value: value,
	}
	if text, ok := util.Printable(value); ok {
		entry.Text = text
	}
	return entry
}

func parseItemCount(s string) (uint64, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if nil != err {
		return 0, fault.ErrInvalidItemCount
	}
	return n, nil
}

func parseSlot(s string) (service.Slot, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if nil != err {
		return 0, fault.ErrInvalidSlot
	}
	return service.Slot(n), nil
}

func printJson(handle io.Writer, message interface{}) {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		fmt.Fprintf(os.Stderr, "JSON encode error: %s\n", err)
		return
	}
	fmt.Fprintf(handle, "%s\n", b)
}
