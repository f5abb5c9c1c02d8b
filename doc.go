// Package mensago provides the core value types shared by Mensago client
// and server software.
//
// The central type is [CryptoString], a compact, human-readable way to
// carry cryptographic data such as keys, hashes, and signatures together
// with the name of the algorithm that produced them:
//
//	BLAKE2B-256:?*e?y<{rk(3}aG<Y<NK1T;-V^d=8r28q1key1q8Q
//
// Rather than base64, CryptoString uses the base85 encoding implemented in
// the base85 subpackage, which is more compact and whose alphabet embeds
// cleanly in quoted and delimited contexts. This package never performs
// cryptographic operations itself; the algorithm name is an opaque label
// interpreted by the consumer.
//
// Basic usage:
//
//	cs := mensago.NewCS("CURVE25519:yb8L<$2XqCr5HCY@}}xBPWLHyXZdx&l>+xz%p1*W")
//	if !cs.IsValid() {
//	    log.Fatal("bad key string")
//	}
//	pubkey, err := cs.RawData()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The package also provides the rest of the platform's verified string
// family: [RandomID], [UserID], [Domain], [MAddress], and [WAddress]. Each
// is validated once when parsed and is immutable afterward, so holding one
// of these values is proof that its content is well-formed. All of them are
// safe to share between goroutines.
package mensago
