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

// Package mapper provides deterministic, immutable mappings from kernel
// error codes (dirpx.dev/kerrors/code) to transport-level statuses for
// HTTP and gRPC.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. exact override for the code;
//  2. per-code default (library or user-adjusted);
//  3. range rule covering the code, typically the reserved 14..1023 block;
//  4. global fallback (500 / codes.Unknown unless configured).
//
// Range rules let a deployment decide up front how codes assigned by a
// future kernel revision surface to clients, without knowing their names.
//
// # Library defaults
//
// Every named code has a default, e.g. code.Busy -> 503 / Unavailable,
// code.Invalid -> 400 / InvalidArgument, code.NoSupport -> 501 /
// Unimplemented. See defaults.go for the full table.
//
// # Building a mapper
//
//	m, err := mapper.New(
//	    mapper.WithHTTPOverride(code.Cancel, 499), // nginx-style
//	    mapper.WithHTTPRange(14, 1023, 501),
//	)
//	if err != nil {
//	    // invalid code, range or status
//	}
//
//	st := m.Status(code.MustFromRaw(500))
//	// st.HTTP == 501, st.GRPC == codes.Unknown
//
// # Diagnostics
//
// Mapper.Explain returns a human-readable trace of which tier matched. It is
// meant for inspection and logging, not for stable machine parsing.
//
// # Immutability
//
// All inputs are copied during New. A Mapper is safe to share across
// goroutines and requests.
package mapper
