/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package metrics counts kernel error codes seen at a process boundary.
//
// Label cardinality is bounded by the code space: at most 1024 values of
// the "code" label, one per valid code, plus a separate counter for raw
// values that were not error codes at all.
package metrics

import (
	"errors"

	"dirpx.dev/kerrors/code"
	"github.com/prometheus/client_golang/prometheus"
)

// Recorder holds the kerrors counters. A nil *Recorder is valid and
// records nothing.
type Recorder struct {
	codes    *prometheus.CounterVec
	rejected prometheus.Counter
}

// New creates a Recorder and registers its counters with reg. A nil reg
// means prometheus.DefaultRegisterer. Registering twice with the same
// registerer reuses the existing collectors.
func New(reg prometheus.Registerer) (*Recorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	codes := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kerrors_codes_total",
			Help: "Kernel error codes observed, by rendered code.",
		},
		[]string{"code"},
	)
	rejected := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "kerrors_rejected_total",
		Help: "Raw error values rejected because they are outside 1..1024.",
	})

	var err error
	if codes, err = register(reg, codes); err != nil {
		return nil, err
	}
	if rejected, err = register(reg, rejected); err != nil {
		return nil, err
	}
	return &Recorder{codes: codes, rejected: rejected}, nil
}

// register registers c, returning the already registered collector when
// an identical one exists.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// Observe counts one occurrence of c. Invalid codes are counted as
// rejected.
func (r *Recorder) Observe(c code.ErrorCode) {
	if r == nil {
		return
	}
	if !c.Valid() {
		r.rejected.Inc()
		return
	}
	r.codes.WithLabelValues(c.String()).Inc()
}

// ObserveRejected counts one raw value that was not an error code.
func (r *Recorder) ObserveRejected() {
	if r == nil {
		return
	}
	r.rejected.Inc()
}

// ObserveRaw converts raw with code.FromRaw and counts the outcome. It
// returns the conversion result unchanged.
func (r *Recorder) ObserveRaw(raw uint32) (code.ErrorCode, error) {
	c, err := code.FromRaw(raw)
	if err != nil {
		r.ObserveRejected()
		return 0, err
	}
	r.Observe(c)
	return c, nil
}
