// Package domain contains the core model for pubfilter.
//
// The domain does not depend on net/http or the filesystem. Infra adapters read
// files and talk to the remote service, then hand their results over as these
// types. JSON entries are carried as raw bytes so nothing is re-encoded on the
// way from the input file to the request body.
package domain
