package models

import (
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Pick is one user's selection for one game. Standard rounds carry only the
// team name; the confidence round also carries the points the user staked on
// it (1-13, zero until chosen).
type Pick struct {
	Team   string `json:"team,omitempty" bson:"team,omitempty"`
	Points int    `json:"points,omitempty" bson:"points,omitempty"`
}

// Picks maps round -> game id (decimal string) -> pick.
type Picks map[string]map[string]Pick

// Get returns the pick for a game, with ok reporting whether one exists.
func (p Picks) Get(round, gameID string) (Pick, bool) {
	pick, ok := p[round][gameID]
	return pick, ok
}

type pickDoc struct {
	Team   string `json:"team" bson:"team"`
	Points int    `json:"points,omitempty" bson:"points,omitempty"`
}

// Standard-round picks are persisted as the bare team name while confidence
// picks are sub-documents, so both wire forms have to round-trip.

func (p Pick) MarshalJSON() ([]byte, error) {
	if p.Points == 0 {
		return json.Marshal(p.Team)
	}
	return json.Marshal(pickDoc{Team: p.Team, Points: p.Points})
}

func (p *Pick) UnmarshalJSON(data []byte) error {
	var team string
	if err := json.Unmarshal(data, &team); err == nil {
		*p = Pick{Team: team}
		return nil
	}

	var doc pickDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("pick must be a team name or a {team, points} object: %w", err)
	}
	*p = Pick{Team: doc.Team, Points: doc.Points}
	return nil
}

func (p Pick) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if p.Points == 0 {
		return bson.MarshalValue(p.Team)
	}
	return bson.MarshalValue(pickDoc{Team: p.Team, Points: p.Points})
}

func (p *Pick) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}

	switch t {
	case bsontype.String:
		team, ok := rv.StringValueOK()
		if !ok {
			return fmt.Errorf("malformed string pick value")
		}
		*p = Pick{Team: team}
		return nil
	case bsontype.EmbeddedDocument:
		var doc pickDoc
		if err := rv.Unmarshal(&doc); err != nil {
			return fmt.Errorf("malformed pick document: %w", err)
		}
		*p = Pick{Team: doc.Team, Points: doc.Points}
		return nil
	}

	return fmt.Errorf("unexpected bson type %s for pick", t)
}
