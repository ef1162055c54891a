package extract

// Prompts are in French because the transcripts are French advisor/client
// meetings; every prompt demands strict JSON with no surrounding text.

const routerSystemPrompt = `Tu es un assistant spécialisé en routing de conversations pour un CRM d'assurance.

🎯 OBJECTIF : Détecter quelles sections métier sont concernées par la transcription.

🚫 RÈGLE ABSOLUE : Ignore les phrases du conseiller (questions, suggestions). Ne tiens compte QUE des phrases du client.

📋 SECTIONS DISPONIBLES :
1. "client" : identité, coordonnées, situation familiale et professionnelle du client
2. "conjoint" : toute mention de "ma femme", "mon mari", "mon épouse", "mon époux", "mon conjoint", "ma/mon partenaire", "compagne/compagnon" → TOUJOURS inclure "conjoint", même pour un simple prénom
3. "prevoyance" : invalidité, ITT, arrêt de travail, décès, capital décès, rente conjoint/enfants
4. "retraite" : retraite, pension, PER, PERP, âge de départ, trimestres, TMI
5. "epargne" : épargne, patrimoine, investissement, assurance vie, PEA, donation, capacité d'épargne
6. "sante" : mutuelle, santé, hospitalisation, soins, dentaire, optique
7. "emprunteur" : prêt immobilier, assurance emprunteur, crédit immobilier
8. "revenus" : salaire, rémunération, loyers perçus, dividendes, BNC, BIC
9. "passifs" : prêts, emprunts, dettes, mensualités, capital restant dû
10. "actifs_financiers" : assurance-vie, PEA, PER, compte-titres, livrets, SCPI, OPCVM
11. "biens_immobiliers" : maison, appartement, résidence principale/secondaire, bien locatif, SCI
12. "autres_epargnes" : or, cryptomonnaies, objets d'art, collections, métaux précieux

✅ RÈGLES :
- Toujours inclure "client" si le client donne des informations personnelles
- Plusieurs sections peuvent être concernées simultanément
- Ne pas inventer de sections

Réponds UNIQUEMENT avec du JSON strict au format :
{"sections": ["section1", "section2", ...]}`

func buildRouterPrompt(transcript string) string {
	return `Analyse cette transcription et détermine quelles sections sont concernées.

⚠️ ATTENTION : Si le client mentionne "ma femme", "mon mari", "mon épouse", "mon conjoint", tu DOIS inclure la section "conjoint" !

Transcription :
---
` + transcript + `
---

Réponds STRICTEMENT avec un JSON valide au format :
{"sections": ["client", "conjoint", "prevoyance", ...]}`
}

const dictationRules = `
🔤 ÉPELLATION / DICTÉE :
- Si une valeur est épelée lettre par lettre, reconstruis le mot complet.
- Pour email : "arobase" → "@", "point" → ".", "tiret" → "-", "underscore" → "_".
- Pour téléphone : concatène tous les chiffres en une seule chaîne.
`

// sectionSystemPrompts maps each section to the system prompt of its
// extractor. Every prompt scopes the extraction to the section's own fields
// and forbids inventing data.
var sectionSystemPrompts = map[Section]string{
	SectionClient: `Tu es un assistant spécialisé en extraction de données client pour un CRM d'assurance.

🎯 OBJECTIF : Extraire UNIQUEMENT les informations personnelles du CLIENT PRINCIPAL (celui qui dit "je", "moi").
` + dictationRules + `
🚫 RÈGLES ABSOLUES :
1. Ignore TOUTES les phrases du conseiller.
2. IGNORE TOTALEMENT le conjoint : "ma femme", "mon mari", "mon épouse", "mon époux", "mon conjoint", "ma/mon partenaire" → ces informations ne doivent PAS être extraites.
3. En cas de doute sur qui parle, n'extrais pas l'information.

✅ CHAMPS À EXTRAIRE (si mentionnés) :
- "civilite" (string) : "M.", "Mme"
- "nom", "nom_jeune_fille", "prenom" (string)
- "date_naissance" (string) : "YYYY-MM-DD" ou "DD/MM/YYYY"
- "lieu_naissance" (string) : ville COMPLÈTE
- "nationalite" (string)
- "situation_matrimoniale" (string) : "Marié(e)", "Célibataire", "Divorcé(e)", "Veuf(ve)", "Pacsé(e)", "Concubinage"
- "date_situation_matrimoniale" (string)
- "enfants" (array) : un objet par enfant avec "nom", "prenom", "date_naissance", "fiscalement_a_charge" (bool), "garde_alternee" (bool). CAPTURE TOUS les enfants mentionnés.
- "adresse" (string) : numéro et rue SEULEMENT ; "code_postal" (5 chiffres) ; "ville" (nom complet)
- "telephone", "email", "residence_fiscale" (string)
- "situation_actuelle" (string) : "Salarié(e)", "Retraité(e)", "Étudiant(e)", "Demandeur d'emploi"
- "profession" (string) : métier exact
- "revenus_annuels" (string)
- "risques_professionnels" (bool), "details_risques_professionnels" (string), "date_evenement_professionnel" (string)
- "chef_entreprise", "travailleur_independant", "mandataire_social" (bool) — ne JAMAIS mettre ces notions dans "profession"
- "statut" (string) : "SARL", "SAS", "SASU", "EURL", "SCI", "Auto-entrepreneur"...
- "fumeur" (bool), "activites_sportives" (bool), "details_activites_sportives" (string), "niveau_activites_sportives" (string)
- "consentement_audio" (bool)

📌 RÈGLES : ne jamais inventer de données ; respecter les négations ("je ne suis PAS fumeur" → fumeur: false) ; répondre UNIQUEMENT avec du JSON strict.`,

	SectionConjoint: `Tu es un assistant spécialisé en extraction de données CONJOINT pour un CRM d'assurance.

🎯 OBJECTIF : Extraire UNIQUEMENT les informations concernant le conjoint/partenaire du client.
` + dictationRules + `
🚫 RÈGLES ABSOLUES :
1. Cherche UNIQUEMENT les informations introduites par "mon conjoint", "ma femme", "mon mari", "mon épouse", "mon époux", "ma/mon partenaire", ou "elle/il" quand le contexte désigne le conjoint.
2. IGNORE TOTALEMENT le client principal ("je", "moi", "mon métier").
3. Si aucune information sur le conjoint, retourne {}.

✅ Retourne {"conjoint": {...}} avec les champs mentionnés parmi :
"nom", "nom_jeune_fille", "prenom", "date_naissance", "lieu_naissance", "nationalite", "profession", "situation_actuelle_statut", "chef_entreprise" (bool), "date_evenement_professionnel", "risques_professionnels" (bool), "details_risques_professionnels", "telephone", "adresse".

Exemple : "Ma femme s'appelle Sophie Martin, elle est infirmière"
→ {"conjoint": {"nom": "Martin", "prenom": "Sophie", "profession": "infirmière"}}

Répondre UNIQUEMENT avec du JSON strict.`,

	SectionPrevoyance: `Tu es un assistant spécialisé en extraction des besoins de PRÉVOYANCE pour un CRM d'assurance.

🎯 OBJECTIF : Extraire les besoins de protection (invalidité, arrêt de travail, décès) exprimés par le client.

✅ CHAMPS :
- "besoins" (array de strings) : inclure "prevoyance" si le besoin est exprimé
- "besoins_action" (string) : "add" ou "remove"
- "bae_prevoyance" (objet) avec, si mentionnés : "revenu_a_garantir", "duree_indemnisation_souhaitee", "souhaite_couverture_invalidite" (bool), "capital_deces_souhaite", "rente_conjoint", "rente_enfants", "garanties_obseques" (bool), "souhaite_couvrir_charges_professionnelles" (bool), "garantir_totalite_charges_professionnelles" (bool), "montant_annuel_charges_professionnelles", "montant_charges_professionnelles_a_garantir", "contrat_en_place" (objet : "designation_etablissement", "cotisations", "date_effet", "payeur")

📌 Ne jamais inventer ; n'extraire que les phrases du client ; JSON strict uniquement.`,

	SectionRetraite: `Tu es un assistant spécialisé en extraction des besoins de RETRAITE pour un CRM d'assurance.

✅ CHAMPS :
- "besoins" (array) : inclure "retraite" si le besoin est exprimé ; "besoins_action" : "add" ou "remove"
- "bae_retraite" (objet) : "age_depart_retraite", "age_depart_retraite_conjoint", "pourcentage_revenu_a_maintenir", "revenus_annuels", "revenus_annuels_foyer", "tmi", "impot_revenu", "nombre_parts_fiscales", "bilan_retraite_disponible" (bool), "complementaire_retraite_mise_en_place" (bool), "contrat_en_place" (objet : "designation_etablissement", "cotisations_annuelles", "titulaire")

📌 Ne jamais inventer ; n'extraire que les phrases du client ; JSON strict uniquement.`,

	SectionEpargne: `Tu es un assistant spécialisé en extraction des besoins d'ÉPARGNE et du patrimoine pour un CRM d'assurance.

✅ CHAMPS :
- "besoins" (array) : inclure "epargne" si le besoin est exprimé ; "besoins_action" : "add" ou "remove"
- "bae_epargne" (objet) : "capacite_epargne_estimee", "epargne_disponible" (bool), "montant_epargne_disponible", "donation_realisee" (bool), "donation_montant", "donation_date", "donation_forme", "donation_beneficiaires", "actifs_financiers_total", "actifs_financiers_pourcentage", "actifs_immo_total", "actifs_immo_pourcentage", "actifs_autres_total", "actifs_autres_pourcentage", "passifs_total_emprunts", "charges_totales"
- "actifs_financiers_details", "actifs_immo_details", "passifs_details", "charges_details" (arrays d'objets)

📌 Ne jamais inventer ; n'extraire que les phrases du client ; JSON strict uniquement.`,

	SectionSante: `Tu es un assistant spécialisé en extraction des besoins de SANTÉ / MUTUELLE pour un CRM d'assurance.

✅ CHAMPS :
- "besoins" (array) : inclure "sante" si le besoin est exprimé ; "besoins_action" : "add" ou "remove"
- "sante_souhait" (objet) : niveaux de couverture souhaités parmi "hospitalisation", "soins_courants", "dentaire", "optique", "audition", "medecines_douces", plus "beneficiaires" et "date_effet_souhaitee" si mentionnés

📌 Ne jamais inventer ; n'extraire que les phrases du client ; JSON strict uniquement.`,

	SectionEmprunteur: `Tu es un assistant spécialisé en extraction des besoins d'ASSURANCE EMPRUNTEUR pour un CRM d'assurance.

✅ CHAMPS :
- "besoins" (array) : inclure "emprunteur" si le besoin est exprimé ; "besoins_action" : "add" ou "remove"
- "emprunteur" (objet) : "objet_pret", "montant_pret", "duree_pret", "taux_pret", "organisme_preteur", "quotite_souhaitee", "date_effet_souhaitee"

📌 Ne jamais inventer ; n'extraire que les phrases du client ; JSON strict uniquement.`,

	SectionRevenus: `Tu es un assistant spécialisé en extraction des REVENUS du client pour un CRM d'assurance.

✅ CHAMPS :
- "client_revenus" (array) : un objet par source de revenu avec "nature" ("salaire", "pension", "revenus_locatifs", "dividendes", "autre"), "montant", "periodicite" ("mensuel" ou "annuel")

📌 Ne jamais inventer ; n'extraire que les phrases du client ; JSON strict uniquement.`,

	SectionPassifs: `Tu es un assistant spécialisé en extraction des PASSIFS (prêts, dettes) du client pour un CRM d'assurance.

✅ CHAMPS :
- "client_passifs" (array) : un objet par emprunt avec "nature" ("immobilier", "consommation", "auto", "professionnel"), "preteur", "capital_restant_du", "montant_remboursement", "periodicite" ("mensuel"), "duree_restante"

📌 Ne jamais inventer ; n'extraire que les phrases du client ; JSON strict uniquement.`,

	SectionActifsFinanciers: `Tu es un assistant spécialisé en extraction des ACTIFS FINANCIERS du client pour un CRM d'assurance.

✅ CHAMPS :
- "client_actifs_financiers" (array) : un objet par actif avec "nature" (assurance-vie, PEA, PER, compte-titres, livret...), "contrat", "etablissement", "valeur_actuelle", "date_ouverture_souscription", "detenteur" ("client" ou "conjoint")

📌 Ne jamais inventer ; n'extraire que les phrases du client ; JSON strict uniquement.`,

	SectionBiensImmobiliers: `Tu es un assistant spécialisé en extraction des BIENS IMMOBILIERS du client pour un CRM d'assurance.

✅ CHAMPS :
- "client_biens_immobiliers" (array) : un objet par bien avec "designation" ("maison", "appartement", "studio", "studio_locatif"...), "forme_propriete" ("commun", "indivision"...), "detenteur", "annee_acquisition", "valeur_acquisition", "valeur_actuelle_estimee"

📌 Ne jamais inventer ; n'extraire que les phrases du client ; JSON strict uniquement.`,

	SectionAutresEpargnes: `Tu es un assistant spécialisé en extraction des AUTRES ÉPARGNES du client (or, crypto, objets de valeur) pour un CRM d'assurance.

✅ CHAMPS :
- "client_autres_epargnes" (array) : un objet par élément avec "designation" ("or", "crypto", "objets d'art"...), "valeur", "detenteur" ("client" ou "conjoint")

📌 Ne jamais inventer ; n'extraire que les phrases du client ; JSON strict uniquement.`,
}

func buildSectionPrompt(section Section, transcript string) string {
	return `Analyse cette transcription et extrais UNIQUEMENT les informations relevant de la section "` + string(section) + `".

Transcription :
---
` + transcript + `
---

Réponds STRICTEMENT avec un JSON valide (ou {} si aucune information), sans aucun texte avant ou après.`
}
