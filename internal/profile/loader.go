package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/CrewPlanner_Go/internal/domain"
	"github.com/osse101/CrewPlanner_Go/internal/logger"
	"github.com/osse101/CrewPlanner_Go/internal/metrics"
	"github.com/osse101/CrewPlanner_Go/internal/validation"
)

// Error messages
const (
	ErrMsgReadProfileFailed  = "failed to read profile: %w"
	ErrMsgParseProfileFailed = "failed to parse profile: %w"
)

// Log messages
const (
	LogMsgRecordSkipped  = "Skipping invalid profile record"
	LogMsgProfileDecoded = "Profile decoded"
)

// save is the subset of the player save the exporter reads. Records stay raw
// so one malformed record never fails the whole save.
type save struct {
	Player struct {
		Character struct {
			Crew        []json.RawMessage `json:"crew"`
			UnOwnedCrew []json.RawMessage `json:"unOwnedCrew"`
			Ships       []json.RawMessage `json:"ships"`
			Items       []json.RawMessage `json:"items"`
		} `json:"character"`
	} `json:"player"`
}

// crewRecord keeps equipment entries raw: saves store them as strings,
// numbers or small arrays depending on the client version
type crewRecord struct {
	Symbol    string            `json:"symbol"`
	Level     int               `json:"level"`
	Rarity    int               `json:"rarity"`
	Equipment []json.RawMessage `json:"equipment"`
}

// Summary counts what a decode kept and skipped
type Summary struct {
	Crew         int `json:"crew"`
	UnownedCrew  int `json:"unowned_crew"`
	Ships        int `json:"ships"`
	Items        int `json:"items"`
	SkippedCrew  int `json:"skipped_crew"`
	SkippedShips int `json:"skipped_ships"`
	SkippedItems int `json:"skipped_items"`
}

// Loader decodes player saves. Records failing validation are skipped.
type Loader struct {
	schemaValidator validation.SchemaValidator
	validate        *validator.Validate
}

// NewLoader creates a profile loader
func NewLoader(schemaValidator validation.SchemaValidator) *Loader {
	return &Loader{
		schemaValidator: schemaValidator,
		validate:        validator.New(),
	}
}

// LoadFile decodes the save at path
func (l *Loader) LoadFile(ctx context.Context, path string) (*domain.Profile, *Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf(ErrMsgReadProfileFailed, err)
	}
	return l.Decode(ctx, data)
}

// DecodeReader decodes a save from r
func (l *Loader) DecodeReader(ctx context.Context, r io.Reader) (*domain.Profile, *Summary, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf(ErrMsgReadProfileFailed, err)
	}
	return l.Decode(ctx, data)
}

// Decode validates the save structure, then each record. Owned crew are
// followed by the unOwnedCrew roster with Owned=false.
func (l *Loader) Decode(ctx context.Context, data []byte) (*domain.Profile, *Summary, error) {
	log := logger.FromContext(ctx)

	if err := l.schemaValidator.ValidateBytes(data, validation.SchemaProfile); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", domain.ErrInvalidProfile, err)
	}

	var s save
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, nil, fmt.Errorf("%w: "+ErrMsgParseProfileFailed, domain.ErrInvalidProfile, err)
	}
	character := &s.Player.Character

	p := &domain.Profile{
		Crew: make([]domain.OwnedCrew, 0, len(character.Crew)+len(character.UnOwnedCrew)),
	}
	sum := &Summary{}

	for _, owned := range []bool{true, false} {
		records := character.Crew
		if !owned {
			records = character.UnOwnedCrew
		}
		crew := decodeRecords(ctx, l, domain.KindCrew, records, func(r *crewRecord) domain.OwnedCrew {
			return toOwnedCrew(r, owned)
		})
		p.Crew = append(p.Crew, crew...)
		if owned {
			sum.Crew = len(crew)
		} else {
			sum.UnownedCrew = len(crew)
		}
		sum.SkippedCrew += len(records) - len(crew)
	}

	p.Ships = decodeRecords(ctx, l, domain.KindShip, character.Ships, identity[domain.OwnedShip])
	sum.Ships = len(p.Ships)
	sum.SkippedShips = len(character.Ships) - len(p.Ships)

	p.Items = decodeRecords(ctx, l, domain.KindItem, character.Items, identity[domain.OwnedItem])
	sum.Items = len(p.Items)
	sum.SkippedItems = len(character.Items) - len(p.Items)

	log.Debug(LogMsgProfileDecoded,
		"crew", sum.Crew,
		"unowned_crew", sum.UnownedCrew,
		"ships", sum.Ships,
		"items", sum.Items,
		"skipped", sum.SkippedCrew+sum.SkippedShips+sum.SkippedItems)

	return p, sum, nil
}

// decodeRecords unmarshals each raw record into W, converts it and validates
// the result. Records failing either step are logged, counted and dropped.
func decodeRecords[W any, T any](ctx context.Context, l *Loader, kind string, records []json.RawMessage, convert func(*W) T) []T {
	out := make([]T, 0, len(records))
	for i, raw := range records {
		var w W
		if err := json.Unmarshal(raw, &w); err != nil {
			l.skip(ctx, kind, i, err)
			continue
		}
		rec := convert(&w)
		if err := l.validate.Struct(rec); err != nil {
			l.skip(ctx, kind, i, err)
			continue
		}
		out = append(out, rec)
	}
	return out
}

func identity[T any](v *T) T { return *v }

func (l *Loader) skip(ctx context.Context, kind string, index int, err error) {
	logger.FromContext(ctx).Warn(LogMsgRecordSkipped, "kind", kind, "index", index, "error", err)
	metrics.ProfileSkippedTotal.WithLabelValues(kind).Inc()
}

func toOwnedCrew(r *crewRecord, owned bool) domain.OwnedCrew {
	c := domain.OwnedCrew{
		Symbol: r.Symbol,
		Level:  r.Level,
		Rarity: r.Rarity,
		Owned:  owned,
	}
	if len(r.Equipment) > 0 {
		c.Equipment = make([]string, 0, len(r.Equipment))
		for _, raw := range r.Equipment {
			c.Equipment = append(c.Equipment, equipmentID(raw))
		}
	}
	return c
}

func equipmentID(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(raw))
}
