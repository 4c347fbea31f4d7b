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

// Package httpx writes kernel errors as HTTP responses.
package httpx

import (
	"errors"
	"net/http"
	"strconv"

	"dirpx.dev/kerrors"
	"dirpx.dev/kerrors/adapter"
	"dirpx.dev/kerrors/apis"
	"google.golang.org/protobuf/encoding/protojson"
)

// MetaCorrelation is the ErrorInfo metadata key holding Meta.Correlation.
const MetaCorrelation = "correlation"

// Meta carries extra context that the HTTP layer can add on top of
// kerrors.Error. All fields are optional.
type Meta struct {
	Correlation       string
	RetryAfterSeconds int32
}

// Writer turns a kerrors.Error into an HTTP response using the provided
// status mapper.
type Writer struct {
	Mapper apis.Mapper
}

// Write resolves the HTTP status via the Mapper and writes the protojson
// form of the error's google.rpc.ErrorInfo as the body.
//
// No redaction is performed: whatever is present in the error and Meta is
// exposed as-is. If the body cannot be encoded (e.g. the message is not
// valid UTF-8) a plain 500 is written instead.
func (w Writer) Write(rw http.ResponseWriter, err *kerrors.Error, meta Meta) {
	if err == nil {
		return
	}

	st := w.Mapper.Status(err.Code)

	info := adapter.ToErrorInfo(err)
	if meta.Correlation != "" {
		info.Metadata[MetaCorrelation] = meta.Correlation
	}

	b, merr := (protojson.MarshalOptions{EmitUnpopulated: false}).Marshal(info)
	if merr != nil {
		http.Error(rw, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	rw.Header().Set("Content-Type", "application/json")
	if meta.RetryAfterSeconds > 0 {
		rw.Header().Set("Retry-After", strconv.Itoa(int(meta.RetryAfterSeconds)))
	}
	rw.WriteHeader(st.HTTP)
	_, _ = rw.Write(b)
}

// WriteError writes any error. Errors whose chain carries a code are
// written through Write; anything else becomes a bare 500.
func (w Writer) WriteError(rw http.ResponseWriter, err error, meta Meta) {
	if err == nil {
		return
	}
	var ke *kerrors.Error
	if errors.As(err, &ke) && ke != nil {
		w.Write(rw, ke, meta)
		return
	}
	if c, ok := kerrors.CodeOf(err); ok {
		w.Write(rw, kerrors.E(c, err.Error()), meta)
		return
	}
	http.Error(rw, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
