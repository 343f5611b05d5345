package catalog

import (
	"context"
	"database/sql"

	dbutil "github.com/llehouerou/lyrifi/internal/db"
)

// SaveUser inserts or updates u, assigning an id when empty.
func (c *Catalog) SaveUser(ctx context.Context, u *User) error {
	return dbutil.WithTx(ctx, c.db, func(tx *sql.Tx) error {
		return c.saveUser(ctx, tx, u)
	})
}

func (c *Catalog) saveUser(ctx context.Context, ex execer, u *User) error {
	if err := required("user", "name", u.Name, "email", u.Email); err != nil {
		return err
	}
	if u.Favorites == nil {
		u.Favorites = []string{}
	}
	c.stamp(&u.ID, &u.CreatedAt, &u.UpdatedAt)

	_, err := ex.ExecContext(ctx, `
		INSERT INTO users (id, name, email, avatar_url, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			email = excluded.email,
			avatar_url = excluded.avatar_url,
			updated_at = excluded.updated_at
	`, u.ID, u.Name, u.Email, dbutil.NullString(u.AvatarURL), u.CreatedAt.Unix(), u.UpdatedAt.Unix())
	if err != nil {
		return wrapWriteErr("user", err)
	}
	return wrapWriteErr("user", replaceRefs(ctx, ex,
		`DELETE FROM user_favorites WHERE user_id = ?`,
		`INSERT INTO user_favorites (user_id, position, track_id) VALUES (?, ?, ?)`,
		u.ID, u.Favorites))
}

// User returns the user with the given id.
func (c *Catalog) User(ctx context.Context, id string) (*User, error) {
	var u User
	var avatarURL sql.NullString
	var createdAt, updatedAt int64

	row := c.db.QueryRowContext(ctx, `
		SELECT id, name, email, avatar_url, created_at, updated_at FROM users WHERE id = ?
	`, id)
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &avatarURL, &createdAt, &updatedAt); err != nil {
		return nil, notFound("user", id, err)
	}
	u.AvatarURL = dbutil.NullStringValue(avatarURL)
	u.CreatedAt = unixTime(createdAt)
	u.UpdatedAt = unixTime(updatedAt)

	favorites, err := c.refs(ctx, `SELECT track_id FROM user_favorites WHERE user_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, err
	}
	u.Favorites = favorites
	return &u, nil
}

// replaceRefs rewrites an ordered id list owned by ownerID.
func replaceRefs(ctx context.Context, ex execer, deleteQuery, insertQuery, ownerID string, ids []string) error {
	if _, err := ex.ExecContext(ctx, deleteQuery, ownerID); err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}

	stmt, err := ex.PrepareContext(ctx, insertQuery)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, id := range ids {
		if _, err := stmt.ExecContext(ctx, ownerID, i, id); err != nil {
			return err
		}
	}
	return nil
}

func (c *Catalog) refs(ctx context.Context, query, ownerID string) ([]string, error) {
	rows, err := c.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
