package identity

// ParamUser is the init data parameter holding the Telegram user JSON
const ParamUser = "user"

// Supported identity file extensions
const (
	ExtYAML = ".yaml"
	ExtYML  = ".yml"
	ExtINI  = ".ini"
	ExtText = ".txt"
)

// INI keys, one section per account
const (
	INIKeyQueryID = "query_id"
	INIKeyProxy   = "proxy"
)

// TextCommentPrefix marks an ignored line in plain text identity files
const TextCommentPrefix = "#"
