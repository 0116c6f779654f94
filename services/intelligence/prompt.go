package ai

import (
	"encoding/json"
	"fmt"
)

// Fixed instruction contracts for the ranking backend. The reply must be a
// bare JSON object so it can be decoded without scraping.

const rankInstructionEN = `You rank records for a bail bond agency's back-office search.
You receive a search query and candidate records grouped by type (clients, cases, bonds, payments, documents).
The records are anonymized: initials, birth years, rounded amounts and months only. Do not speculate about identities.
Score each candidate's relevance to the query from 0 to 1 and drop irrelevant ones.
Respond with only a JSON object of this exact shape, no prose and no code fences:
{"results":[{"type":"client|case|bond|payment|document","id":"...","title":"...","description":"...","relevanceScore":0.0}]}`

const rankInstructionES = `Clasificas registros para la búsqueda administrativa de una agencia de fianzas.
Recibes una consulta y registros candidatos agrupados por tipo (clientes, casos, fianzas, pagos, documentos).
Los registros están anonimizados: solo iniciales, años de nacimiento, montos redondeados y meses. No especules sobre identidades.
Puntúa la relevancia de cada candidato respecto a la consulta de 0 a 1 y descarta los irrelevantes.
Escribe los títulos y descripciones en español.
Responde únicamente con un objeto JSON con esta forma exacta, sin prosa y sin bloques de código:
{"results":[{"type":"client|case|bond|payment|document","id":"...","title":"...","description":"...","relevanceScore":0.0}]}`

func rankInstruction(language string) string {
	if language == "es" {
		return rankInstructionES
	}
	return rankInstructionEN
}

// buildRankPrompt renders the user-visible part of the ranking request.
func buildRankPrompt(req RankRequest) (string, error) {
	candidates, err := json.Marshal(req.Candidates)
	if err != nil {
		return "", fmt.Errorf("marshal candidates: %w", err)
	}
	return fmt.Sprintf("Query: %s\n\nCandidates:\n%s", req.Query, candidates), nil
}
