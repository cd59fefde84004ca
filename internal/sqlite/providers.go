// File path: internal/sqlite/providers.go
package sqlite

import (
	"context"
	"fmt"
)

// ListProviders returns every API provider in natural order. The api_key
// column round-trips in cleartext; the schema has no place to keep a secret
// out of band, and the dashboard edits keys in place.
func (s *Store) ListProviders(ctx context.Context) ([]APIProvider, error) {
	if err := s.ensureReady(); err != nil {
		return nil, err
	}
	providers := []APIProvider{}
	if err := s.db.SelectContext(ctx, &providers, `SELECT * FROM api_providers`); err != nil {
		return nil, fmt.Errorf("select api providers: %w", err)
	}
	return providers, nil
}

// UpsertProvider inserts or replaces an API provider keyed by id.
func (s *Store) UpsertProvider(ctx context.Context, provider APIProvider) error {
	if err := s.ensureReady(); err != nil {
		return err
	}
	result, err := s.db.ExecContext(ctx, `INSERT INTO api_providers (id, name, provider_type, api_key, version, is_active)
                VALUES (?, ?, ?, ?, ?, ?)
                ON CONFLICT(id) DO UPDATE SET
                        name=excluded.name,
                        provider_type=excluded.provider_type,
                        api_key=excluded.api_key,
                        version=excluded.version,
                        is_active=excluded.is_active`,
		provider.ID, provider.Name, provider.ProviderType, provider.APIKey, provider.Version, provider.IsActive)
	if err != nil {
		return fmt.Errorf("upsert api provider: %w", err)
	}
	return checkAffected(result, "upsert api provider")
}

// DeleteProvider removes a provider; deleting an unknown id is a no-op.
func (s *Store) DeleteProvider(ctx context.Context, id string) error {
	if err := s.ensureReady(); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM api_providers WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete api provider: %w", err)
	}
	return nil
}
