package registry

import "github.com/qualipharm/qualipharm/schema"

// The built-in catalog. Field ids are stable identifiers referenced by
// stored records; changing one orphans the historical data, so ids are
// append-only.
var templates = []schema.DocumentTemplate{
	{
		ID:            "org-chart",
		Title:         "Organigramme de l'Officine",
		Category:      "Organisation",
		Description:   "Organigramme hiérarchique de l'équipe officinale",
		EstimatedTime: "10 min",
		Fields: []schema.FieldDescriptor{
			{ID: "pharmacyName", Label: "Nom de la pharmacie", Type: schema.FieldText, Required: true},
			{ID: "titulaire", Label: "Pharmacien titulaire", Type: schema.FieldText, Required: true},
			{ID: "adjoint1", Label: "Pharmacien adjoint 1", Type: schema.FieldText},
			{ID: "adjoint2", Label: "Pharmacien adjoint 2", Type: schema.FieldText},
			{ID: "administrator1", Label: "Préparateur référent 1", Type: schema.FieldText},
			{ID: "administrator2", Label: "Préparateur référent 2", Type: schema.FieldText},
			{ID: "subAdmins1", Label: "Équipe du référent 1", Type: schema.FieldTextarea, Rows: 2,
				Placeholder: "Un nom par ligne"},
			{ID: "subAdmins2", Label: "Équipe du référent 2", Type: schema.FieldTextarea, Rows: 2,
				Placeholder: "Un nom par ligne"},
			{ID: "auxiliaries", Label: "Personnel auxiliaire", Type: schema.FieldTextarea, Rows: 3,
				Placeholder: "Un nom par ligne"},
			{ID: "updateDate", Label: "Date de mise à jour", Type: schema.FieldDate, Required: true},
		},
	},
	{
		ID:            "dysfunction-report",
		Title:         "Rapport de Dysfonctionnement",
		Category:      "Qualité",
		Description:   "Déclaration et analyse d'un dysfonctionnement interne",
		EstimatedTime: "15 min",
		Fields: []schema.FieldDescriptor{
			{ID: "pharmacyName", Label: "Nom de la pharmacie", Type: schema.FieldText, Required: true},
			{ID: "pharmacyInitials", Label: "Initiales de classement", Type: schema.FieldText,
				Placeholder: "Dérivées du nom, modifiables"},
			{ID: "reportDate", Label: "Date du rapport", Type: schema.FieldDate, Required: true},
			{ID: "incidentDate", Label: "Date du dysfonctionnement", Type: schema.FieldDateTime, Required: true},
			{ID: "location", Label: "Lieu", Type: schema.FieldText, Required: true},
			{ID: "reporter", Label: "Déclarant", Type: schema.FieldText, Required: true},
			{ID: "category", Label: "Catégorie", Type: schema.FieldSelect, Required: true,
				Options: []string{"Délivrance", "Stock", "Chaîne du froid", "Hygiène", "Autre"}},
			{ID: "description", Label: "Description du dysfonctionnement", Type: schema.FieldTextarea, Required: true, Rows: 5},
			{ID: "immediateAction", Label: "Action immédiate", Type: schema.FieldTextarea, Rows: 3},
			{ID: "rootCause", Label: "Cause racine identifiée", Type: schema.FieldTextarea, Rows: 3},
			{ID: "contactEmail", Label: "Email de contact", Type: schema.FieldEmail},
		},
	},
	{
		ID:            "incident-register",
		Title:         "Registre des Incidents",
		Category:      "Qualité",
		Description:   "Enregistrement chronologique des incidents qualité",
		EstimatedTime: "5 min",
		Fields: []schema.FieldDescriptor{
			{ID: "pharmacyName", Label: "Nom de la pharmacie", Type: schema.FieldText, Required: true},
			{ID: "pharmacyInitials", Label: "Initiales de classement", Type: schema.FieldText,
				Placeholder: "Dérivées du nom, modifiables"},
			{ID: "incidentDate", Label: "Date de l'incident", Type: schema.FieldDate, Required: true},
			{ID: "incidentType", Label: "Type d'incident", Type: schema.FieldSelect, Required: true,
				Options: []string{"Erreur de délivrance", "Rupture de stock", "Réclamation", "Produit non conforme", "Autre"}},
			{ID: "severity", Label: "Gravité", Type: schema.FieldSelect, Required: true,
				Options: []string{"Mineure", "Modérée", "Majeure", "Critique"}},
			{ID: "description", Label: "Description", Type: schema.FieldTextarea, Required: true, Rows: 4},
			{ID: "correctiveAction", Label: "Action corrective", Type: schema.FieldTextarea, Rows: 3},
			{ID: "recordedBy", Label: "Enregistré par", Type: schema.FieldText, Required: true},
		},
	},
	{
		ID:            "capa-plan",
		Title:         "Plan d'Actions CAPA",
		Category:      "Qualité",
		Description:   "Plan d'actions correctives et préventives",
		EstimatedTime: "20 min",
		Fields: []schema.FieldDescriptor{
			{ID: "pharmacyName", Label: "Nom de la pharmacie", Type: schema.FieldText, Required: true},
			{ID: "planDate", Label: "Date du plan", Type: schema.FieldDate, Required: true},
			{ID: "origin", Label: "Origine (audit, incident...)", Type: schema.FieldText, Required: true},
			{ID: "pilot", Label: "Pilote du plan", Type: schema.FieldText, Required: true},
			{ID: "context", Label: "Contexte", Type: schema.FieldTextarea, Rows: 3},
			{ID: "reviewDate", Label: "Date de revue prévue", Type: schema.FieldDate},
		},
	},
	{
		ID:            "process-sheet",
		Title:         "Fiche de Processus",
		Category:      "Processus",
		Description:   "Description formalisée d'un processus de l'officine",
		EstimatedTime: "25 min",
		Fields: []schema.FieldDescriptor{
			{ID: "pharmacyName", Label: "Nom de la pharmacie", Type: schema.FieldText, Required: true},
			{ID: "processName", Label: "Nom du processus", Type: schema.FieldText, Required: true},
			{ID: "processOwner", Label: "Pilote du processus", Type: schema.FieldText, Required: true},
			{ID: "purpose", Label: "Finalité", Type: schema.FieldTextarea, Required: true, Rows: 3},
			{ID: "inputs", Label: "Éléments d'entrée", Type: schema.FieldTextarea, Rows: 2},
			{ID: "outputs", Label: "Éléments de sortie", Type: schema.FieldTextarea, Rows: 2},
			{ID: "indicators", Label: "Indicateurs de suivi", Type: schema.FieldTextarea, Rows: 2},
		},
	},
	{
		ID:            "swot-analysis",
		Title:         "Analyse SWOT",
		Category:      "Organisation",
		Description:   "Forces, faiblesses, opportunités et menaces de l'officine",
		EstimatedTime: "30 min",
		Fields: []schema.FieldDescriptor{
			{ID: "pharmacyName", Label: "Nom de la pharmacie", Type: schema.FieldText, Required: true},
			{ID: "analysisDate", Label: "Date de l'analyse", Type: schema.FieldDate, Required: true},
			{ID: "strengths", Label: "Forces", Type: schema.FieldTextarea, Required: true, Rows: 4},
			{ID: "weaknesses", Label: "Faiblesses", Type: schema.FieldTextarea, Required: true, Rows: 4},
			{ID: "opportunities", Label: "Opportunités", Type: schema.FieldTextarea, Required: true, Rows: 4},
			{ID: "threats", Label: "Menaces", Type: schema.FieldTextarea, Required: true, Rows: 4},
			{ID: "participants", Label: "Participants", Type: schema.FieldText},
		},
	},
	{
		ID:            "cold-chain-register",
		Title:         "Registre de Traçabilité - Chaîne du Froid",
		Category:      "Traçabilité",
		Description:   "Relevé des températures des enceintes réfrigérées",
		EstimatedTime: "5 min",
		Fields: []schema.FieldDescriptor{
			{ID: "pharmacyName", Label: "Nom de la pharmacie", Type: schema.FieldText, Required: true},
			{ID: "readingDate", Label: "Date du relevé", Type: schema.FieldDate, Required: true},
			{ID: "equipment", Label: "Enceinte", Type: schema.FieldSelect, Required: true,
				Options: []string{"Réfrigérateur principal", "Réfrigérateur secours", "Enceinte vaccins"}},
			{ID: "temperature", Label: "Température relevée (°C)", Type: schema.FieldNumber, Required: true},
			{ID: "conform", Label: "Conformité (2-8°C)", Type: schema.FieldSelect, Required: true,
				Options: []string{"Conforme", "Non conforme"}},
			{ID: "observation", Label: "Observation", Type: schema.FieldTextarea, Rows: 2},
			{ID: "recordedBy", Label: "Relevé par", Type: schema.FieldText, Required: true},
		},
	},
	{
		ID:            "waste-log",
		Title:         "Suivi des Déchets",
		Category:      "Traçabilité",
		Description:   "Journal de suivi des déchets d'activités de soins",
		EstimatedTime: "10 min",
		Fields: []schema.FieldDescriptor{
			{ID: "pharmacyName", Label: "Nom de la pharmacie", Type: schema.FieldText, Required: true},
			{ID: "periodStart", Label: "Début de période", Type: schema.FieldDate, Required: true},
			{ID: "periodEnd", Label: "Fin de période", Type: schema.FieldDate, Required: true},
			{ID: "collector", Label: "Prestataire de collecte", Type: schema.FieldText, Required: true},
			{ID: "collectorPhone", Label: "Téléphone du prestataire", Type: schema.FieldTel},
			{ID: "comment", Label: "Commentaire", Type: schema.FieldTextarea, Rows: 2},
		},
	},
}
