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

package code

// Named error codes.
//
// Only these values have mnemonics. Every other code in [1, 1024] is
// reserved and renders as "code N".
const (
	// Fail is a generic failure condition.
	Fail ErrorCode = 1

	// Busy indicates the underlying system is busy; retry later.
	Busy ErrorCode = 2

	// Already indicates the requested state is already in effect.
	Already ErrorCode = 3

	// Off indicates the component is powered down.
	Off ErrorCode = 4

	// Reserve indicates a reservation is required before use.
	Reserve ErrorCode = 5

	// Invalid indicates an invalid parameter was passed.
	Invalid ErrorCode = 6

	// Size indicates a parameter passed was too large.
	Size ErrorCode = 7

	// Cancel indicates the operation was cancelled by a call.
	Cancel ErrorCode = 8

	// NoMem indicates memory required was not allocated.
	NoMem ErrorCode = 9

	// NoSupport indicates the operation is not supported.
	NoSupport ErrorCode = 10

	// NoDevice indicates the device is not available.
	NoDevice ErrorCode = 11

	// Uninstalled indicates the device is not physically installed.
	Uninstalled ErrorCode = 12

	// NoAck indicates the packet transmission was not acknowledged.
	NoAck ErrorCode = 13

	// BadRVal indicates a return value was invalid. The kernel never emits
	// it; userspace APIs return it to flag their own misuse.
	BadRVal ErrorCode = 1024
)

// named lists the codes with mnemonics in ascending order.
var named = [...]ErrorCode{
	Fail, Busy, Already, Off, Reserve, Invalid, Size,
	Cancel, NoMem, NoSupport, NoDevice, Uninstalled, NoAck, BadRVal,
}

// Named returns the 14 named codes in ascending order. The slice is a
// fresh copy on every call.
func Named() []ErrorCode {
	out := make([]ErrorCode, len(named))
	copy(out, named[:])
	return out
}

// Name returns the mnemonic of c and true, or "" and false when c has
// none (reserved or invalid values).
func (c ErrorCode) Name() (string, bool) {
	switch c {
	case Fail:
		return "FAIL", true
	case Busy:
		return "BUSY", true
	case Already:
		return "ALREADY", true
	case Off:
		return "OFF", true
	case Reserve:
		return "RESERVE", true
	case Invalid:
		return "INVALID", true
	case Size:
		return "SIZE", true
	case Cancel:
		return "CANCEL", true
	case NoMem:
		return "NOMEM", true
	case NoSupport:
		return "NOSUPPORT", true
	case NoDevice:
		return "NODEVICE", true
	case Uninstalled:
		return "UNINSTALLED", true
	case NoAck:
		return "NOACK", true
	case BadRVal:
		return "BADRVAL", true
	}
	return "", false
}

// byName is the inverse of Name. s must already be upper case.
func byName(s string) (ErrorCode, bool) {
	switch s {
	case "FAIL":
		return Fail, true
	case "BUSY":
		return Busy, true
	case "ALREADY":
		return Already, true
	case "OFF":
		return Off, true
	case "RESERVE":
		return Reserve, true
	case "INVALID":
		return Invalid, true
	case "SIZE":
		return Size, true
	case "CANCEL":
		return Cancel, true
	case "NOMEM":
		return NoMem, true
	case "NOSUPPORT":
		return NoSupport, true
	case "NODEVICE":
		return NoDevice, true
	case "UNINSTALLED":
		return Uninstalled, true
	case "NOACK":
		return NoAck, true
	case "BADRVAL":
		return BadRVal, true
	}
	return 0, false
}
