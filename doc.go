// Copyright (c) 2026 The urlsig authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package urlsig issues and verifies expiring signed URLs.

Signing appends two query parameters to a URL: expires, a Unix timestamp
after which the URL is no longer valid, and signature, a keyed hash over
the expiry and the rest of the URL. Verification recomputes the hash and
rejects URLs that were tampered with, signed with a different key, or have
expired. The scheme provides integrity and expiry only, not encryption:
anyone can read a signed URL, but only a key holder can mint one.
*/
package urlsig
