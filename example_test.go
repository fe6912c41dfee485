// Copyright (c) 2026 The urlsig authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package urlsig_test

import (
	"fmt"
	"time"

	"github.com/signkit/urlsig"
)

const secret = "support-your-local-cat-bonnet-store"

func Example() {
	// A fixed clock keeps the output reproducible; drop WithNowFunc in
	// real use.
	signer, err := urlsig.New([]byte("shhh"),
		urlsig.WithNowFunc(func() time.Time { return time.Unix(1700000000, 0) }),
	)
	if err != nil {
		fmt.Println("got err:", err)
		return
	}

	signed, err := signer.Sign("https://example.com/download?file=report.pdf", "1 HOUR")
	if err != nil {
		fmt.Println("got err:", err)
		return
	}

	fmt.Println(signed)
	fmt.Println(signer.Verify(signed))
	fmt.Println(signer.Verify(signed + "0"))

	// Output:
	// https://example.com/download?file=report.pdf&expires=1700003600&signature=d2e5bee42ee1c62ae8f1f3046a7a313e62563fd2f70313b92001be55322127f4
	// true
	// false
}

func ExampleSigner_Verify() {
	signer, err := urlsig.New([]byte(secret), urlsig.WithValidity(15*time.Minute))
	if err != nil {
		fmt.Println("got err:", err)
		return
	}

	signed, err := signer.Sign("https://example.com/reports/q3.pdf", "")
	if err != nil {
		fmt.Println("got err:", err)
		return
	}

	fmt.Println(signer.Verify(signed))
	fmt.Println(signer.Verify("https://example.com/reports/q3.pdf"))

	// Output:
	// true
	// false
}
