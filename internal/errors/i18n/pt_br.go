package i18n

var ptBRCatalog = &Catalog{
	locale: "pt-BR",
	messages: map[Code]string{
		CodeUnknown: "Algo deu errado",

		// Event lifecycle errors
		CodeEventNotActive:     "Evento {{.EventID}} não está ativo",
		CodeEventChoiceInvalid: "Escolha {{.ChoiceIndex}} fora do intervalo para o evento {{.EventID}}",
		CodeEventNoChoices:     "Evento {{.EventID}} não tem escolhas para resolver",

		// Catalog errors
		CodeCatalogTitleEmpty:         "Modelo {{.TemplateID}} tem título vazio",
		CodeCatalogUnknownCategory:    "Modelo {{.TemplateID}} tem categoria desconhecida {{.Category}}",
		CodeCatalogUnknownResource:    "Modelo {{.TemplateID}} usa recurso desconhecido {{.Resource}}",
		CodeCatalogInvalidValueRange:  "Modelo {{.TemplateID}} tem valor mínimo acima do máximo",
		CodeCatalogInvalidSuccessRate: "Modelo {{.TemplateID}} tem taxa de sucesso fora de [0,1]",
		CodeCatalogInvalidDuration:    "Modelo {{.TemplateID}} precisa de duração positiva",
		CodeCatalogAutoApplyChoices:   "Modelo {{.TemplateID}} é automático e não pode definir escolhas",
		CodeCatalogInvalidChoice:      "Modelo {{.TemplateID}} tem uma escolha inválida",
		CodeCatalogDuplicateTemplate:  "Id de modelo {{.TemplateID}} definido mais de uma vez",

		// Storage errors
		CodeLedgerNotFound:     "Nenhum registro de eventos para o jogador {{.PlayerID}}",
		CodePersistenceFailure: "Não foi possível salvar o registro de eventos",
		CodeSchemaUnsupported:  "Versão de esquema {{.Version}} não suportada",
	},
}
