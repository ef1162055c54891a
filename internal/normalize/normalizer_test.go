package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vocalis/internal/domain"
)

func TestNormalize_CanonicalFormats(t *testing.T) {
	n := NewNormalizer()
	record := n.Normalize(domain.Record{
		"date_naissance": "15/03/1980",
		"telephone":      "06 12 34 56 78",
		"email":          " Jean.Dupont@Gmail.COM ",
		"code_postal":    "75 011",
	}, "")

	assert.Equal(t, "1980-03-15", record["date_naissance"])
	assert.Equal(t, "0612345678", record["telephone"])
	assert.Equal(t, "jean.dupont@gmail.com", record["email"])
	assert.Equal(t, "75011", record["code_postal"])
}

func TestNormalize_InvalidValuesDropped(t *testing.T) {
	n := NewNormalizer()
	record := n.Normalize(domain.Record{
		"date_naissance": "aucune idée",
		"telephone":      "12",
		"code_postal":    "750",
	}, "")

	_, hasDate := record["date_naissance"]
	_, hasPhone := record["telephone"]
	_, hasPostal := record["code_postal"]
	assert.False(t, hasDate)
	assert.False(t, hasPhone)
	assert.False(t, hasPostal)
}

func TestNormalize_Idempotent(t *testing.T) {
	n := NewNormalizer()
	transcript := "je fais du tennis et je ne fume pas"

	once := n.Normalize(domain.Record{
		"date_naissance": "15/03/1980",
		"telephone":      "06 12 34 56 78",
		"fumeur":         "oui",
		"besoins":        []any{"retraite"},
	}, transcript)
	twice := n.Normalize(once.Clone(), transcript)

	assert.Equal(t, once, twice)
}

func TestNormalize_NumericCoercion(t *testing.T) {
	n := NewNormalizer()
	record := n.Normalize(domain.Record{
		"revenus_annuels": "45000",
		"nombre_enfants":  float64(2),
	}, "")

	assert.Equal(t, float64(45000), record["revenus_annuels"])
	assert.Equal(t, 2, record["nombre_enfants"])

	record = n.Normalize(domain.Record{"revenus_annuels": "confortables"}, "")
	assert.Nil(t, record["revenus_annuels"])
}

func TestNormalize_BooleanFieldsCoerced(t *testing.T) {
	n := NewNormalizer()
	record := n.Normalize(domain.Record{
		"fumeur":             "non",
		"consentement_audio": "oui",
		"chef_entreprise":    "aucune idée",
	}, "")

	assert.Equal(t, false, record["fumeur"])
	assert.Equal(t, true, record["consentement_audio"])
	_, exists := record["chef_entreprise"]
	assert.False(t, exists)
}

func TestNormalize_OralNegationOverwrites(t *testing.T) {
	n := NewNormalizer()
	record := n.Normalize(domain.Record{"fumeur": true}, "non non, je ne fume pas")

	assert.Equal(t, false, record["fumeur"])
}

func TestNormalize_OralAffirmationDoesNotFlipFalse(t *testing.T) {
	n := NewNormalizer()
	record := n.Normalize(domain.Record{"activites_sportives": false}, "je fais du sport")

	assert.Equal(t, false, record["activites_sportives"])
}

func TestNormalize_SportsDetection(t *testing.T) {
	n := NewNormalizer()
	record := n.Normalize(domain.Record{}, "je fais du tennis et de la natation le week-end")

	assert.Equal(t, true, record["activites_sportives"])
	details := record.StringValue("details_activites_sportives")
	assert.Contains(t, details, "Tennis")
	assert.Contains(t, details, "Natation")
}

func TestNormalize_SportsNegativeContextIgnored(t *testing.T) {
	n := NewNormalizer()
	record := n.Normalize(domain.Record{}, "je ne fais plus de tennis depuis des années")

	_, hasDetails := record["details_activites_sportives"]
	assert.False(t, hasDetails)
}

func TestNormalize_SportsDetailsForceFlag(t *testing.T) {
	n := NewNormalizer()
	record := n.Normalize(domain.Record{
		"activites_sportives":         false,
		"details_activites_sportives": "Tennis",
	}, "")

	assert.Equal(t, true, record["activites_sportives"], "details imply practice")
}

func TestNormalize_EnterpriseHydration(t *testing.T) {
	n := NewNormalizer()
	record := n.Normalize(domain.Record{}, "je dirige ma propre entreprise, une SARL")

	assert.Equal(t, true, record["chef_entreprise"])
	assert.Equal(t, "SARL", record["statut"])
}

func TestNormalize_EnterpriseNegationWins(t *testing.T) {
	n := NewNormalizer()
	record := n.Normalize(domain.Record{"chef_entreprise": true},
		"je ne suis plus chef d'entreprise depuis l'an dernier")

	assert.Equal(t, false, record["chef_entreprise"])
}

func TestNormalize_AddressDecomposition(t *testing.T) {
	n := NewNormalizer()
	record := n.Normalize(domain.Record{
		"adresse": "12 rue de la Paix, 75002 Paris",
	}, "")

	assert.Equal(t, "75002", record["code_postal"])
	assert.Equal(t, "Paris", record["ville"])
}

func TestNormalize_AddressCityFallback(t *testing.T) {
	n := NewNormalizer()
	record := n.Normalize(domain.Record{
		"adresse": "12 rue Victor Hugo, Lyon",
	}, "")

	_, hasPostal := record["code_postal"]
	assert.False(t, hasPostal)
	assert.Equal(t, "Lyon", record["ville"])
}

func TestNormalize_ExistingCityNotOverwritten(t *testing.T) {
	n := NewNormalizer()
	record := n.Normalize(domain.Record{
		"adresse": "12 avenue Foch, 69006 Lyon",
		"ville":   "Villeurbanne",
	}, "")

	assert.Equal(t, "Villeurbanne", record["ville"])
}

func TestNormalize_Children(t *testing.T) {
	n := NewNormalizer()
	record := n.Normalize(domain.Record{
		"enfants": []any{
			map[string]any{
				"prenom":               " Léa ",
				"date_naissance":       "12/05/2010",
				"fiscalement_a_charge": "oui",
			},
			"pas un objet",
		},
	}, "")

	children := record.List("enfants")
	require.Len(t, children, 1)
	child := children[0].(map[string]any)
	assert.Equal(t, "Léa", child["prenom"])
	assert.Equal(t, "2010-05-12", child["date_naissance"])
	assert.Equal(t, true, child["fiscalement_a_charge"])
	assert.Equal(t, 1, record["nombre_enfants"])
}

func TestNormalize_ChildrenAllUnusableDropsField(t *testing.T) {
	n := NewNormalizer()
	record := n.Normalize(domain.Record{
		"enfants": []any{"trois", float64(3)},
	}, "")

	_, exists := record["enfants"]
	assert.False(t, exists)
}

func TestNormalize_NeedsActionPolicy(t *testing.T) {
	n := NewNormalizer()

	record := n.Normalize(domain.Record{"besoins": []any{"retraite"}}, "")
	assert.Equal(t, "add", record["besoins_action"])

	record = n.Normalize(domain.Record{"besoins": []any{"retraite"}, "besoins_action": "replace"}, "")
	assert.Equal(t, "add", record["besoins_action"], "replace is never a valid action")

	record = n.Normalize(domain.Record{"besoins": []any{"retraite"}, "besoins_action": "remove"}, "")
	assert.Equal(t, "remove", record["besoins_action"])

	record = n.Normalize(domain.Record{"besoins": []any{}}, "")
	assert.Nil(t, record["besoins_action"])

	record = n.Normalize(domain.Record{}, "")
	_, exists := record["besoins_action"]
	assert.False(t, exists, "absent besoins key stays absent")
}

func TestNormalize_NeedsStringDecoded(t *testing.T) {
	n := NewNormalizer()
	record := n.Normalize(domain.Record{"besoins": `["prevoyance", "retraite"]`}, "")

	assert.Equal(t, []any{"prevoyance", "retraite"}, record["besoins"])
	assert.Equal(t, "add", record["besoins_action"])
}

func TestNormalize_LegacyFieldNames(t *testing.T) {
	n := NewNormalizer()
	record := n.Normalize(domain.Record{
		"datedenaissance": "15/03/1980",
		"marie":           true,
		"enfants":         float64(2),
	}, "")

	assert.Equal(t, "1980-03-15", record["date_naissance"])
	assert.Equal(t, "Marié(e)", record["situation_matrimoniale"])
	assert.Equal(t, 2, record["nombre_enfants"])
	_, hasLegacy := record["datedenaissance"]
	_, hasChildren := record["enfants"]
	assert.False(t, hasLegacy)
	assert.False(t, hasChildren)
}

func TestNormalize_ConjointSubRecord(t *testing.T) {
	n := NewNormalizer()
	record := n.Normalize(domain.Record{
		"conjoint": map[string]any{
			"date_naissance":  "12/05/1980",
			"telephone":       "06 98 76 54 32",
			"chef_entreprise": "non",
		},
	}, "")

	conjoint := record.Sub("conjoint")
	assert.Equal(t, "1980-05-12", conjoint["date_naissance"])
	assert.Equal(t, "0698765432", conjoint["telephone"])
	assert.Equal(t, false, conjoint["chef_entreprise"])
}

func TestRepairSpokenEmail(t *testing.T) {
	got := RepairSpokenEmail("mon email est jean point dupont arobase gmail point com")
	assert.Equal(t, "jean.dupont@gmail.com", got)

	got = RepairSpokenEmail("mon mail c'est jean underscore dupont arobase yahoo point fr")
	assert.Equal(t, "jean_dupont@yahoo.fr", got)

	got = RepairSpokenEmail("aucune mention ici")
	assert.Equal(t, "", got)
}

func TestNormalize_RepairsIncompleteEmail(t *testing.T) {
	n := NewNormalizer()
	record := n.Normalize(domain.Record{"email": "jean point dupont"},
		"mon email est jean point dupont arobase gmail point com")

	assert.Equal(t, "jean.dupont@gmail.com", record["email"])
}
