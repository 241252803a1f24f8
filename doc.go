// Package pcihostreport provides a PCI DSS evidence collector for a single host.
//
// One run gathers fourteen categories of security-relevant facts (identity,
// accounts, patch history, processes, sockets, password policy, log shipping,
// time sync, file integrity monitoring) and appends them as numbered sections
// to a dated plain-text report under the invoking user's home directory.
package pcihostreport
