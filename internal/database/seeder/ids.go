package seeder

import "github.com/google/uuid"

var seedNamespace = uuid.MustParse("6f1c2d1e-8a57-4c1b-9d0e-3a7c5b2e4f90")

// seedID derives a stable id so re-running a seeder is a no-op.
func seedID(kind, name string) uuid.UUID {
	return uuid.NewSHA1(seedNamespace, []byte(kind+":"+name))
}
