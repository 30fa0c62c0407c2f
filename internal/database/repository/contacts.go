package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/rubrica/internal/contact"
	"github.com/jask/rubrica/internal/database"
)

const (
	kindPhone = "phone"
	kindEmail = "email"
)

// ContactRepo persists the address book. It satisfies contact.Store.
type ContactRepo struct {
	db *sql.DB
}

func NewContactRepo(db *sql.DB) *ContactRepo {
	return &ContactRepo{db: db}
}

// Load returns every stored contact in insertion order.
func (r *ContactRepo) Load(ctx context.Context) ([]contact.Contact, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, first_name, last_name, address FROM contacts ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []contact.Contact
	index := map[string]int{}
	for rows.Next() {
		var c contact.Contact
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Address); err != nil {
			return nil, err
		}
		index[c.ID] = len(out)
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	details, err := r.db.QueryContext(ctx, `SELECT contact_id, kind, value FROM contact_details ORDER BY contact_id, kind, position`)
	if err != nil {
		return nil, err
	}
	defer details.Close()
	for details.Next() {
		var id, kind, value string
		if err := details.Scan(&id, &kind, &value); err != nil {
			return nil, err
		}
		i, ok := index[id]
		if !ok {
			continue
		}
		switch kind {
		case kindPhone:
			out[i].Phones = append(out[i].Phones, value)
		case kindEmail:
			out[i].Emails = append(out[i].Emails, value)
		}
	}
	return out, details.Err()
}

// Save replaces the stored address book with contacts in one transaction.
func (r *ContactRepo) Save(ctx context.Context, contacts []contact.Contact) error {
	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM contact_details`); err != nil {
			return fmt.Errorf("clear details: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM contacts`); err != nil {
			return fmt.Errorf("clear contacts: %w", err)
		}
		now := database.Now()
		for pos, c := range contacts {
			if _, err := tx.ExecContext(ctx, `
			INSERT INTO contacts(id, position, first_name, last_name, address, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
				c.ID, pos, c.FirstName, c.LastName, c.Address, now); err != nil {
				return fmt.Errorf("insert contact %s: %w", c.ID, err)
			}
			if err := insertDetails(ctx, tx, c.ID, kindPhone, c.Phones); err != nil {
				return err
			}
			if err := insertDetails(ctx, tx, c.ID, kindEmail, c.Emails); err != nil {
				return err
			}
		}
		return nil
	})
}

// Count returns the number of stored contacts.
func (r *ContactRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contacts`).Scan(&n)
	return n, err
}

func insertDetails(ctx context.Context, tx *sql.Tx, id, kind string, values []string) error {
	for pos, v := range values {
		if _, err := tx.ExecContext(ctx, `
		INSERT INTO contact_details(contact_id, kind, position, value) VALUES (?, ?, ?, ?)`,
			id, kind, pos, v); err != nil {
			return fmt.Errorf("insert %s for %s: %w", kind, id, err)
		}
	}
	return nil
}
