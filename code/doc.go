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

// Package code defines the kernel syscall error-code space.
//
// A syscall that fails hands userspace a 32-bit unsigned integer. The
// protocol assigns meaning to the closed interval [1, 1024]:
//
//   - 1..13 and 1024 are named codes (FAIL, BUSY, ..., NOACK, BADRVAL);
//   - 14..1023 are reserved: valid, distinct values without a mnemonic in
//     this revision, so that binaries built today keep working against
//     kernels that assign them later.
//
// ErrorCode is a newtype over that integer. FromRaw checks the range once
// and returns the same integer typed, so moving between the raw protocol
// value and the typed value never goes through a table.
//
// 0 is NOT a valid code (it does not mean "success"), and neither is any
// value above 1024. Both are rejected with ErrNotAnErrorCode.
//
// BADRVAL is never emitted by a kernel. Userspace APIs use it to report
// their own misuse with the same type.
package code
