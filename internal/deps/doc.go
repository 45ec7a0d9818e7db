// Package deps checks the availability of the external binaries sidesplit
// drives. A failed check is reported, never retried.
package deps
