package loader

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/Sc-Mae/squad-service/internal/domain/errors"
)

const validDocument = `[
  {
    "squadName": "Super Hero Squad",
    "homeTown": "Metro City",
    "formed": 2016,
    "status": "active",
    "secretBase": "Super tower",
    "active": true,
    "members": [
      {
        "name": "Molecule Man",
        "age": 29,
        "secretIdentity": "Dan Jukes",
        "powers": ["Radiation resistance", "Turning tiny", "Radiation blast"]
      },
      {
        "name": "Madame Uppercut",
        "age": 39,
        "secretIdentity": "Jane Wilson",
        "powers": ["Million tonne punch", "Damage resistance", "Superhuman reflexes"]
      }
    ]
  },
  {
    "squadName": "Villain League",
    "homeTown": "Dark City",
    "formed": 1999,
    "secretBase": "Underground lair",
    "members": [
      {
        "name": "Eternal Flame",
        "age": 1000000,
        "secretIdentity": "Unknown",
        "powers": ["Immortality", "Heat Immunity", "Immortality"]
      }
    ]
  }
]`

func TestLoad_ValidArray(t *testing.T) {
	squads, err := Load(strings.NewReader(validDocument))
	require.NoError(t, err)
	require.Len(t, squads, 2)

	// Количество участников совпадает с записями в документе
	assert.Len(t, squads[0].Members, 2)
	assert.Len(t, squads[1].Members, 1)

	first := squads[0]
	assert.Equal(t, "Super Hero Squad", first.Squad.SquadName)
	assert.Equal(t, "Metro City", first.Squad.HomeTown)
	assert.Equal(t, 2016, first.Squad.Formed)
	assert.True(t, first.Squad.Active)

	assert.Equal(t, "Molecule Man", first.Members[0].Name)
	assert.Equal(t, 29, first.Members[0].Age)
	assert.Equal(t, "Dan Jukes", first.Members[0].SecretIdentity)
	assert.NotEmpty(t, first.Members[0].MemberID)
	assert.NotEqual(t, first.Members[0].MemberID, first.Members[1].MemberID)
}

func TestLoad_SingleObject(t *testing.T) {
	doc := `{
		"squadName": "Solo Squad",
		"homeTown": "Nowhere",
		"formed": 2020,
		"secretBase": "Basement",
		"members": [
			{"name": "Hero", "age": 30, "secretIdentity": "Nobody", "powers": ["Flight"]}
		]
	}`

	squads, err := Load(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, squads, 1)
	assert.Equal(t, "Solo Squad", squads[0].Squad.SquadName)

	// Отсутствующие status и active получают значения по умолчанию
	assert.Equal(t, "active", squads[0].Squad.Status)
	assert.True(t, squads[0].Squad.Active)
}

func TestLoad_DedupesPowers(t *testing.T) {
	squads, err := Load(strings.NewReader(validDocument))
	require.NoError(t, err)

	flame := squads[1].Members[0]
	assert.Equal(t, []string{"Immortality", "Heat Immunity"}, flame.Powers)
}

func TestLoad_MissingRequiredField(t *testing.T) {
	doc := `{
		"homeTown": "Metro City",
		"formed": 2016,
		"secretBase": "Super tower",
		"members": []
	}`

	_, err := Load(strings.NewReader(doc))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainErrors.ErrParse))

	var domainErr *domainErrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "PARSE_ERROR", domainErr.Code)
	assert.Contains(t, domainErr.Message, "SquadName")
}

func TestLoad_WrongFieldType(t *testing.T) {
	doc := `{
		"squadName": "Broken Squad",
		"homeTown": "Metro City",
		"formed": "not a year",
		"secretBase": "Super tower",
		"members": []
	}`

	_, err := Load(strings.NewReader(doc))
	require.Error(t, err)

	var domainErr *domainErrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "PARSE_ERROR", domainErr.Code)
	assert.Contains(t, domainErr.Message, "formed")
}

func TestLoad_InvalidJSON(t *testing.T) {
	_, err := Load(strings.NewReader(`{"squadName": `))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainErrors.ErrParse))
}

func TestLoad_EmptyDocument(t *testing.T) {
	_, err := Load(strings.NewReader("   "))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainErrors.ErrParse))
}

func TestLoad_MemberMissingPowers(t *testing.T) {
	doc := `{
		"squadName": "Squad",
		"homeTown": "Town",
		"formed": 2000,
		"secretBase": "Base",
		"members": [
			{"name": "Hero", "age": 30, "secretIdentity": "Nobody", "powers": []}
		]
	}`

	_, err := Load(strings.NewReader(doc))
	require.Error(t, err)

	var domainErr *domainErrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "PARSE_ERROR", domainErr.Code)
}

func TestDedupePowers(t *testing.T) {
	powers := []string{"Flight", "Speed", "Flight", "Strength", "Speed"}
	assert.Equal(t, []string{"Flight", "Speed", "Strength"}, DedupePowers(powers))
}
