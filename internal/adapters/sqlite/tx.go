package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"journeydeck/internal/domain"
)

// exportTx wraps the single transaction an export runs in
type exportTx struct {
	ctx context.Context
	tx  *sql.Tx
}

func (t *exportTx) write(content domain.Content) error {
	if err := t.clear(); err != nil {
		return fmt.Errorf("clear previous export: %w", err)
	}
	if err := t.setMeta("schema_version", schemaVersion); err != nil {
		return err
	}

	for pos, jc := range content.Journeys {
		if err := t.insertJourney(pos, jc.Journey); err != nil {
			return fmt.Errorf("journey %s: %w", jc.Journey, err)
		}
		for _, step := range jc.Steps {
			if err := t.insertStep(jc.Journey, step); err != nil {
				return fmt.Errorf("journey %s step %d: %w", jc.Journey, step.ID, err)
			}
		}
	}

	for i, slide := range content.Slides {
		if err := t.insertSlide(i+1, slide); err != nil {
			return fmt.Errorf("slide %d: %w", i+1, err)
		}
	}
	return nil
}

// clear removes rows of a previous export; child rows go by cascade
func (t *exportTx) clear() error {
	for _, table := range []string{"journeys", "slides", "meta"} {
		if _, err := t.tx.ExecContext(t.ctx, "DELETE FROM "+table); err != nil {
			return err
		}
	}
	return nil
}

func (t *exportTx) setMeta(key, value string) error {
	_, err := t.tx.ExecContext(t.ctx,
		`INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)`, key, value)
	return err
}

func (t *exportTx) insertJourney(pos int, j domain.Journey) error {
	_, err := t.tx.ExecContext(t.ctx, `
		INSERT INTO journeys (name, position, title, tagline)
		VALUES (?, ?, ?, ?)
	`, j.String(), pos, j.Title(), j.Tagline())
	return err
}

// insertStep writes the step and its two note lists. Pain points and
// solutions are stored in separate tables, each with its own ordering.
func (t *exportTx) insertStep(j domain.Journey, step domain.JourneyStep) error {
	_, err := t.tx.ExecContext(t.ctx, `
		INSERT INTO steps (journey, step_id, title, description)
		VALUES (?, ?, ?, ?)
	`, j.String(), step.ID, step.Title, step.Description)
	if err != nil {
		return err
	}

	if err := t.insertNotes("pain_points", j, step.ID, step.PainPoints); err != nil {
		return err
	}
	return t.insertNotes("solutions", j, step.ID, step.Solutions)
}

func (t *exportTx) insertNotes(table string, j domain.Journey, stepID int, notes []string) error {
	for pos, text := range notes {
		_, err := t.tx.ExecContext(t.ctx,
			`INSERT INTO `+table+` (journey, step_id, position, text) VALUES (?, ?, ?, ?)`,
			j.String(), stepID, pos, text)
		if err != nil {
			return err
		}
	}
	return nil
}

func (t *exportTx) insertSlide(number int, s domain.Slide) error {
	var link sql.NullString
	if s.Link != nil {
		link = sql.NullString{String: s.Link.URL, Valid: true}
	}

	_, err := t.tx.ExecContext(t.ctx, `
		INSERT INTO slides (number, heading, markdown, link_url)
		VALUES (?, ?, ?, ?)
	`, number, s.Heading(), s.Markdown(), link)
	if err != nil {
		return err
	}

	for pos, img := range s.Images {
		_, err := t.tx.ExecContext(t.ctx, `
			INSERT INTO slide_images (number, position, src, alt)
			VALUES (?, ?, ?, ?)
		`, number, pos, img.Src, img.Alt)
		if err != nil {
			return err
		}
	}
	return nil
}

// Commit commits the transaction
func (t *exportTx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction
func (t *exportTx) Rollback() error {
	return t.tx.Rollback()
}
