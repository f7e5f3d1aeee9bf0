// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 DuneRoot
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transaction - canonical transaction encoding and signing
//
// the canonical byte sequence both identifies a transaction and is
// the exact input to its signatures, so any change in field order,
// width or optional field handling breaks compatibility
//
// field order of the encoding:
//
//	 1. type                  1 byte
//	 2. timestamp             4 bytes little endian
//	 3. sender public key     raw decoded bytes
//	 4. requester public key  raw decoded bytes, only when present
//	 5. recipient             21 bytes: decoded address or all zero
//	 6. vendor field          64 bytes, zero padded
//	 7. amount                8 bytes little endian
//	 8. fee                   8 bytes little endian
//	 9. asset                 kind specific bytes, append only
//	10. signature             DER bytes, only when requested
//	11. second signature      DER bytes, only when requested and set
//
// the transaction id is the hex SHA-256 of the fully unsigned bytes
// and never changes once the fee is fixed; the first signature also
// covers the fully unsigned bytes while the second signature covers
// the bytes including the first signature
package transaction
