package services

import (
	"context"
	"encoding/json"
	"fmt"

	"cafe-telegram/beverage"
	"cafe-telegram/db"
)

// Draft is the composition a customer is still building: the base they picked
// and the condiments added so far, in wrapping order.
type Draft struct {
	BaseKind   string   `json:"base_kind"`
	Condiments []string `json:"condiments"`
}

func GetDraft(ctx context.Context, userID int64) (*Draft, error) {
	var baseKind string
	var condimentsJSON []byte
	err := db.Pool.QueryRow(ctx, `
		SELECT base_kind, condiments FROM drafts WHERE user_id = $1`,
		userID,
	).Scan(&baseKind, &condimentsJSON)
	if err != nil {
		// No draft yet
		return nil, nil
	}

	d := &Draft{BaseKind: baseKind}
	if len(condimentsJSON) > 0 {
		if err := json.Unmarshal(condimentsJSON, &d.Condiments); err != nil {
			return nil, fmt.Errorf("unmarshal draft condiments: %w", err)
		}
	}
	return d, nil
}

func SaveDraft(ctx context.Context, userID int64, draft *Draft) error {
	if !beverage.IsBaseKind(draft.BaseKind) {
		return fmt.Errorf("draft needs a base beverage, got %q", draft.BaseKind)
	}
	condimentsJSON, err := json.Marshal(draft.Condiments)
	if err != nil {
		return fmt.Errorf("marshal draft condiments: %w", err)
	}

	_, err = db.Pool.Exec(ctx, `
		INSERT INTO drafts (user_id, base_kind, condiments, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (user_id) DO UPDATE SET
			base_kind = $2,
			condiments = $3,
			updated_at = now()`,
		userID, draft.BaseKind, condimentsJSON,
	)
	return err
}

// AddCondimentToDraft appends one condiment to the stored draft. The draft
// must already have a base; a condiment can never start a composition.
func AddCondimentToDraft(ctx context.Context, userID int64, kind string) (*Draft, error) {
	if !beverage.IsCondimentKind(kind) {
		return nil, fmt.Errorf("unknown condiment kind: %s", kind)
	}
	d, err := GetDraft(ctx, userID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, fmt.Errorf("no draft to add %s to", kind)
	}
	d.Condiments = append(d.Condiments, kind)
	if err := SaveDraft(ctx, userID, d); err != nil {
		return nil, err
	}
	return d, nil
}

func DeleteDraft(ctx context.Context, userID int64) error {
	_, err := db.Pool.Exec(ctx, `DELETE FROM drafts WHERE user_id = $1`, userID)
	return err
}
