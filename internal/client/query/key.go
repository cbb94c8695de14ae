package query

import "strings"

const keySeparator = ":"

// Key identifica uma consulta em cache, do mais geral para o mais específico.
// ["instructors"] é prefixo de ["instructors", "page=2"].
type Key []string

func (k Key) String() string {
	return strings.Join(k, keySeparator)
}

// With devolve uma chave filha de k
func (k Key) With(parts ...string) Key {
	child := make(Key, 0, len(k)+len(parts))
	child = append(child, k...)
	return append(child, parts...)
}

// hasPrefix compara por segmentos: "instructors" não é prefixo de "instructors_old"
func hasPrefix(key, prefix string) bool {
	return key == prefix || strings.HasPrefix(key, prefix+keySeparator)
}
