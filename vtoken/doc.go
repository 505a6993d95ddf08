// Package vtoken packs and unpacks the verification token exchanged with
// clients over email links: a fixed-length pepper, a fixed-length token
// digest, and a variable-length UTF-8 username, concatenated and carried as
// a single base64 string.
//
// Fixed-length prefix fields make the variable-length tail unambiguous
// without a length prefix, at the cost of coupling the codec to the hash
// configuration that produced the token upstream. The codec performs no
// cryptographic verification; callers validate the decoded triple against
// their stored verification record.
package vtoken
