package main

import (
	"fmt"
	"io"

	lru "github.com/hashicorp/golang-lru"
	"github.com/urfave/cli/v2"
	"github.com/usnistgov/berdecode/ber"
)

var oidNames = map[string]string{
	"1.2.840.10045.2.1":       "ecPublicKey",
	"1.2.840.10045.3.1.7":     "prime256v1",
	"1.2.840.10045.4.3.2":     "ecdsa-with-SHA256",
	"1.2.840.10045.4.3.3":     "ecdsa-with-SHA384",
	"1.2.840.113549":          "rsadsi",
	"1.2.840.113549.1.1.1":    "rsaEncryption",
	"1.2.840.113549.1.1.5":    "sha1WithRSAEncryption",
	"1.2.840.113549.1.1.11":   "sha256WithRSAEncryption",
	"1.2.840.113549.1.1.12":   "sha384WithRSAEncryption",
	"1.2.840.113549.1.9.1":    "emailAddress",
	"1.3.101.112":             "Ed25519",
	"1.3.132.0.34":            "secp384r1",
	"1.3.6.1.5.5.7.1.1":       "authorityInfoAccess",
	"1.3.6.1.5.5.7.3.1":       "serverAuth",
	"1.3.6.1.5.5.7.3.2":       "clientAuth",
	"1.3.6.1.4.1.45724.2.1.1": "fidoU2FTransports",
	"2.5.4.3":                 "commonName",
	"2.5.4.5":                 "serialNumber",
	"2.5.4.6":                 "countryName",
	"2.5.4.7":                 "localityName",
	"2.5.4.8":                 "stateOrProvinceName",
	"2.5.4.10":                "organizationName",
	"2.5.4.11":                "organizationalUnitName",
	"2.5.29.14":               "subjectKeyIdentifier",
	"2.5.29.15":               "keyUsage",
	"2.5.29.17":               "subjectAltName",
	"2.5.29.19":               "basicConstraints",
	"2.5.29.31":               "cRLDistributionPoints",
	"2.5.29.32":               "certificatePolicies",
	"2.5.29.35":               "authorityKeyIdentifier",
	"2.5.29.37":               "extKeyUsage",
}

// oidLabels memoizes rendered OID labels; certificates repeat the same few OIDs many times.
var oidLabels = func() *lru.Cache {
	c, e := lru.New(256)
	if e != nil {
		panic(e)
	}
	return c
}()

// oidLabel renders an OID in dotted notation, followed by its name if known.
func oidLabel(oid ber.ObjectIdentifier) string {
	dotted := oid.String()
	if label, ok := oidLabels.Get(dotted); ok {
		return label.(string)
	}

	label := dotted
	if name, ok := oidNames[dotted]; ok {
		label = fmt.Sprintf("%s (%s)", dotted, name)
	}
	oidLabels.Add(dotted, label)
	return label
}

func printOIDs(w io.Writer, args []string) error {
	for _, arg := range args {
		docs, e := readHex([]byte(arg))
		if e != nil {
			return e
		}
		oid, e := ber.DecodeObjectIdentifier(docs[0].Wire)
		if e != nil {
			return fmt.Errorf("%s: %w", arg, e)
		}
		fmt.Fprintln(w, oidLabel(oid))
	}
	return nil
}

func init() {
	defineCommand(func() *cli.Command {
		return &cli.Command{
			Name:      "oid",
			Usage:     "Decode OBJECT IDENTIFIER payloads given in hexadecimal.",
			ArgsUsage: "HEX...",
			Action: func(c *cli.Context) error {
				if c.NArg() == 0 {
					return fmt.Errorf("expect at least one OID payload")
				}
				return printOIDs(c.App.Writer, c.Args().Slice())
			},
		}
	})
}
