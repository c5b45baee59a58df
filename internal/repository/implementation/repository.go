package implementation

import "healthlink-be/internal/pkg/apperror"

// storeError tags a database failure so the transport layer can answer 502
// instead of a generic 500. Not-found is handled before this is reached.
func storeError(err error) error {
	if err == nil {
		return nil
	}
	return apperror.Upstream(err, "store operation failed")
}
