package token

var keywords = map[string]Kind{
	"true":  KwTrue,
	"false": KwFalse,
	"null":  KwNull,
}

// LookupKeyword возвращает Kind ключевого слова для идентификатора,
// если он зарезервирован.
func LookupKeyword(ident string) (Kind, bool) {
	kind, ok := keywords[ident]
	return kind, ok
}
