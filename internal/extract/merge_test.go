package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vocalis/internal/domain"
)

func TestMerge_ScalarOverwriteRules(t *testing.T) {
	acc := domain.Record{"nom": "Dupont", "prenom": "Jean"}

	acc = Merge(acc, domain.Record{"nom": "Martin", "prenom": "", "ville": "Paris"})

	assert.Equal(t, "Martin", acc["nom"], "non-empty incoming value overwrites")
	assert.Equal(t, "Jean", acc["prenom"], "blank incoming value never erases")
	assert.Equal(t, "Paris", acc["ville"], "new keys are added")
}

func TestMerge_NilNeverErases(t *testing.T) {
	acc := domain.Record{"profession": "médecin"}
	acc = Merge(acc, domain.Record{"profession": nil})
	assert.Equal(t, "médecin", acc["profession"])
}

func TestMerge_ConcatKeys(t *testing.T) {
	acc := domain.Record{"enfants": []any{map[string]any{"prenom": "Léa"}}}
	acc = Merge(acc, domain.Record{"enfants": []any{map[string]any{"prenom": "Tom"}}})

	children := acc.List("enfants")
	assert.Len(t, children, 2)
}

func TestMerge_BesoinsDeduplicated(t *testing.T) {
	acc := domain.Record{"besoins": []any{"prevoyance", "retraite"}}
	acc = Merge(acc, domain.Record{"besoins": []any{"retraite", "epargne"}})

	assert.Equal(t, []any{"prevoyance", "retraite", "epargne"}, acc["besoins"])
}

func TestMerge_RecursiveKeys(t *testing.T) {
	acc := domain.Record{
		"conjoint": map[string]any{"prenom": "Sophie"},
	}
	acc = Merge(acc, domain.Record{
		"conjoint": map[string]any{"profession": "infirmière"},
	})

	conjoint := acc.Sub("conjoint")
	assert.Equal(t, "Sophie", conjoint["prenom"])
	assert.Equal(t, "infirmière", conjoint["profession"])
}

func TestMerge_RecursiveKeysNestedNonEmptyWins(t *testing.T) {
	acc := domain.Record{
		"bae_retraite": map[string]any{"age_depart_retraite": "62", "tmi": "30"},
	}
	acc = Merge(acc, domain.Record{
		"bae_retraite": map[string]any{"age_depart_retraite": "", "revenus_annuels": "45000"},
	})

	bae := acc.Sub("bae_retraite")
	assert.Equal(t, "62", bae["age_depart_retraite"])
	assert.Equal(t, "30", bae["tmi"])
	assert.Equal(t, "45000", bae["revenus_annuels"])
}

func TestMerge_OtherListsReplaced(t *testing.T) {
	acc := domain.Record{"client_revenus": []any{map[string]any{"montant": "1000"}}}
	acc = Merge(acc, domain.Record{"client_revenus": []any{
		map[string]any{"montant": "2000"},
	}})

	revenus := acc.List("client_revenus")
	assert.Len(t, revenus, 1)
	assert.Equal(t, "2000", revenus[0].(map[string]any)["montant"])
}

func TestMerge_DisjointRecordsOrderIndependent(t *testing.T) {
	a := domain.Record{"nom": "Dupont", "besoins": []any{"retraite"}}
	b := domain.Record{"profession": "médecin", "besoins": []any{"retraite"}}

	left := Merge(Merge(domain.Record{}, a.Clone()), b.Clone())
	right := Merge(Merge(domain.Record{}, b.Clone()), a.Clone())

	assert.Equal(t, left, right)
}
