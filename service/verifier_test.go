// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package service_test

import (
	"bytes"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/workservice/digest"
	"github.com/bitmark-inc/workservice/result"
	"github.com/bitmark-inc/workservice/service"
	"github.com/bitmark-inc/workservice/storage"
	"github.com/bitmark-inc/workservice/storage/mocks"
)

const (
	testCore    = service.CoreIndex(0)
	testService = service.ServiceId(0x99fbfec5)
)

func newVerifier() *service.Verifier {
	return service.NewVerifier(storage.NewMemory(), logger.New(category))
}

func refine(s service.Service, workPayload []byte) []byte {
	return s.Refine(testCore, 0, testService, workPayload, digest.Digest{})
}

func TestVerifyHello(t *testing.T) {
	helloDigest := digest.NewDigest([]byte("hello"))
	workPayload := append(helloDigest[:], []byte("hello")...)

	output := refine(newVerifier(), workPayload)

	expected := append([]byte{0x01}, helloDigest[:]...)
	assert.Equal(t, expected, output, "wrong output")
}

func TestVerifyMismatch(t *testing.T) {
	helloDigest := digest.NewDigest([]byte("hello"))
	worldDigest := digest.NewDigest([]byte("world"))
	workPayload := append(helloDigest[:], []byte("world")...)

	output := refine(newVerifier(), workPayload)

	assert.Equal(t, 33, len(output), "wrong length")
	assert.Equal(t, byte(0x00), output[0], "wrong code")
	assert.Equal(t, worldDigest[:], output[1:], "output must carry the computed digest")
	assert.NotEqual(t, helloDigest[:], output[1:], "output carries the expected digest")
}

func TestVerifyTooShort(t *testing.T) {
	expected := make([]byte, 33)
	expected[0] = 0xe1

	v := newVerifier()
	for n := 0; n < 33; n += 1 {
		output := refine(v, bytes.Repeat([]byte{0xaa}, n))
		assert.Equal(t, expected, output, "length %d: wrong output", n)
	}
}

func TestVerifyLengthTen(t *testing.T) {
	output := refine(newVerifier(), []byte("0123456789"))
	assert.Equal(t, append([]byte{0xe1}, make([]byte, 32)...), output, "wrong output")
}

func TestVerifyProperties(t *testing.T) {
	v := newVerifier()

	preimages := [][]byte{
		{0x00},
		[]byte("a"),
		[]byte("hello world"),
		bytes.Repeat([]byte{0xff}, 64),
		bytes.Repeat([]byte("0123456789abcdef"), 100),
	}

	for i, p := range preimages {
		d := digest.NewDigest(p)

		output := refine(v, append(d[:], p...))
		code, computed, err := result.Unpack(output)
		assert.Nil(t, err, "%d: unpack error", i)
		assert.Equal(t, result.Valid, code, "%d: matching digest not valid", i)
		assert.Equal(t, d, computed, "%d: wrong computed digest", i)

		wrong := d
		wrong[31] ^= 0x01
		output = refine(v, append(wrong[:], p...))
		code, computed, err = result.Unpack(output)
		assert.Nil(t, err, "%d: unpack error", i)
		assert.Equal(t, result.Invalid, code, "%d: wrong digest not invalid", i)
		assert.Equal(t, d, computed, "%d: wrong computed digest", i)
	}
}

func TestVerifyDeterministic(t *testing.T) {
	v := newVerifier()
	workPayload := append(make([]byte, 32), []byte("deterministic")...)

	first := refine(v, workPayload)
	second := v.Refine(service.CoreIndex(3), 17, service.ServiceId(1), workPayload, digest.NewDigest([]byte("package")))
	assert.Equal(t, first, second, "refine depends on more than the payload")
}

func TestRefineDoesNotTouchStorage(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	// no expectations: any storage call fails the test
	m := mocks.NewMockStore(ctl)

	v := service.NewVerifier(m, logger.New(category))
	refine(v, []byte("short"))
	refine(v, append(make([]byte, 32), 'x'))

	i := service.NewIncrementer(m, logger.New(category))
	refine(i, []byte("anything"))
}
