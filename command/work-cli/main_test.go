// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	helloDigest = "19213bacc58dee6dbde3ceb9a47cbb330b3d86f8cca8997eb00be456f140ca25"
	worldDigest = "7f96d190e809b7238c8156f01e2a805389b89b58493007fdb6b1b9f4b3f71799"
)

func run(t *testing.T, args ...string) (map[string]interface{}, error) {
	w := &bytes.Buffer{}
	e := &bytes.Buffer{}
	app := newApp(w, e)
	err := app.Run(append([]string{"work-cli"}, args...))
	if nil != err {
		return nil, err
	}
	out := make(map[string]interface{})
	if jerr := json.Unmarshal(w.Bytes(), &out); nil != jerr {
		t.Fatalf("output: %q  error: %s", w.String(), jerr)
	}
	return out, nil
}

func TestPayload(t *testing.T) {
	out, err := run(t, "payload", "--preimage", "hello")
	assert.Nil(t, err, "payload error")
	assert.Equal(t, helloDigest, out["expected"], "wrong expected digest")
	assert.Equal(t, "0x"+helloDigest+"68656c6c6f", out["payload"], "wrong payload")
	assert.Equal(t, false, out["tampered"], "tampered")
}

func TestPayloadTamper(t *testing.T) {
	out, err := run(t, "payload", "--preimage", "hello", "--tamper")
	assert.Nil(t, err, "payload error")
	assert.Equal(t, "1a213bacc58dee6dbde3ceb9a47cbb330b3d86f8cca8997eb00be456f140ca25", out["expected"], "first byte not incremented")
	assert.Equal(t, true, out["tampered"], "not tampered")
}

func TestPayloadMissingPreimage(t *testing.T) {
	_, err := run(t, "payload")
	assert.Equal(t, ErrRequiredPreimage, err, "missing preimage accepted")
}

func TestDigest(t *testing.T) {
	out, err := run(t, "digest", "--data", "world")
	assert.Nil(t, err, "digest error")
	assert.Equal(t, worldDigest, out["digest"], "wrong digest")

	out, err = run(t, "digest", "--hex", "0x776f726c64")
	assert.Nil(t, err, "digest error")
	assert.Equal(t, worldDigest, out["digest"], "wrong hex digest")

	_, err = run(t, "digest")
	assert.Equal(t, ErrRequiredData, err, "no data accepted")

	_, err = run(t, "digest", "--data", "a", "--hex", "61")
	assert.Equal(t, ErrRequiredData, err, "both inputs accepted")
}

func TestDecode(t *testing.T) {
	out, err := run(t, "decode", "--output", "0x01"+helloDigest)
	assert.Nil(t, err, "decode error")
	assert.Equal(t, "valid", out["code"], "wrong code")
	assert.Equal(t, true, out["valid"], "not valid")
	assert.Equal(t, helloDigest, out["digest"], "wrong digest")

	zeros := "000000000000000000000000000000000000000000000000000000000000000000"
	out, err = run(t, "decode", "--output", "e1"+zeros[2:])
	assert.Nil(t, err, "decode error")
	assert.Equal(t, "error_payload_too_short", out["code"], "wrong code")
	assert.Equal(t, true, out["error"], "not error")
	assert.Nil(t, out["digest"], "error has digest")

	_, err = run(t, "decode", "--output", "0x0102")
	assert.NotNil(t, err, "short output accepted")
}

func TestIncrement(t *testing.T) {
	out, err := run(t, "increment", "--hex", "0x00ff48414c")
	assert.Nil(t, err, "increment error")
	assert.Equal(t, "0x010049424d", out["output"], "wrong output")

	_, err = run(t, "increment")
	assert.Equal(t, ErrRequiredHex, err, "missing hex accepted")
}
