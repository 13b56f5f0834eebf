package engine

import (
	"context"
	"encoding/json"
	"io"

	"wellbeing/internal/account"
)

// exportedAccount is the downloadable record shape: identity and progress,
// with the credential checksum deliberately left out.
type exportedAccount struct {
	Name      string           `json:"name"`
	Email     string           `json:"email"`
	CreatedAt int64            `json:"createdAt"`
	Progress  account.Progress `json:"progress"`
}

// Export writes the current account's full serialized record to w,
// excluding the password checksum.
func (s *Service) Export(ctx context.Context, w io.Writer) error {
	acct, err := s.requireCurrent(ctx)
	if err != nil {
		return err
	}
	out := exportedAccount{
		Name:      acct.Name,
		Email:     acct.Email,
		CreatedAt: acct.CreatedAt,
		Progress:  acct.Progress,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
