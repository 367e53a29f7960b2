package runtime

// Rent parameters matching the Solana runtime's defaults. Accounts are
// created at the rent-exempt minimum, which is refunded in full when the
// account is closed.
const (
	accountStorageOverhead = 128
	lamportsPerByteYear    = 3480
	rentExemptionYears     = 2
)

// RentExemptMinimum returns the lamport balance required to keep an account
// of the given data size alive indefinitely.
func RentExemptMinimum(dataSize int) uint64 {
	return uint64(accountStorageOverhead+dataSize) * lamportsPerByteYear * rentExemptionYears
}
