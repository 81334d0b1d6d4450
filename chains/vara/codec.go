// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package vara

import (
	"bytes"
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// EncodePayload builds a program message payload: service route, method
// route, then the SCALE-encoded arguments.
func EncodePayload(service string, method string, args ...interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := scale.NewEncoder(&buf)
	if err := enc.Encode(service); err != nil {
		return nil, err
	}
	if err := enc.Encode(method); err != nil {
		return nil, err
	}
	for _, arg := range args {
		if err := enc.Encode(arg); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// DecodePayload decodes a program message payload addressed by service and
// method route into target. It reports whether the routes matched; a
// non-matching payload is not an error.
func DecodePayload(payload []byte, service string, method string, target interface{}) (bool, error) {
	dec := scale.NewDecoder(bytes.NewReader(payload))

	var gotService string
	if err := dec.Decode(&gotService); err != nil {
		return false, fmt.Errorf("decoding service route: %w", err)
	}
	if gotService != service {
		return false, nil
	}

	var gotMethod string
	if err := dec.Decode(&gotMethod); err != nil {
		return false, fmt.Errorf("decoding method route: %w", err)
	}
	if gotMethod != method {
		return false, nil
	}

	if err := dec.Decode(target); err != nil {
		return false, fmt.Errorf("decoding %s.%s payload: %w", service, method, err)
	}
	return true, nil
}
