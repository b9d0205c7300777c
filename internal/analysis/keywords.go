package analysis

// Keyword tables are matched as lower-case substrings of lower-cased input.
// Changing an entry changes scores; keep the lists in step with the tests.

var highComplexityKeywords = []string{
	"real-time",
	"realtime",
	"ai-",
	"ai ",
	"artificial intelligence",
	"machine learning",
	"ml model",
	"llm",
	"blockchain",
	"crypto",
	"nft",
	"microservice",
	"marketplace",
	"platform",
	"video streaming",
	"recommendation engine",
	"multi-tenant",
	"offline sync",
	"distributed",
}

var mediumComplexityKeywords = []string{
	"payment",
	"stripe",
	"auth",
	"login",
	"signup",
	"sign up",
	"notification",
	"search",
	"analytics",
	"file upload",
	"email",
	"integration",
	"api",
	"dashboard",
	"chat",
	"subscription",
	"calendar",
	"geolocation",
}

var scopeCreepPhrases = []string{
	"and also",
	"plus",
	"everything",
	"full platform",
	"as well as",
	"all-in-one",
	"etc.",
	"complete solution",
	"end-to-end",
}

// databaseKeywords are the storage engines counted by the "more than one
// database" over-engineering rule. Redis has its own rule.
var databaseKeywords = []string{
	"postgres",
	"mysql",
	"mariadb",
	"mongo",
	"sqlite",
	"dynamodb",
	"firebase",
	"firestore",
	"supabase",
	"cassandra",
	"couchdb",
	"neo4j",
	"elasticsearch",
}

var realtimeFeatureKeywords = []string{"real-time", "realtime", "live "}

var collaborationFeatureKeywords = []string{"chat", "collaborat", "multiplayer"}

// boringTechnology lists tools a solo developer can adopt without spending an
// innovation token.
var boringTechnology = []string{
	"postgres",
	"postgresql",
	"mysql",
	"sqlite",
	"rails",
	"ruby on rails",
	"nodejs",
	"next.js",
	"nextjs",
	"django",
	"laravel",
	"express",
	"node",
	"react",
	"vue",
	"html",
	"css",
	"javascript",
	"typescript",
	"python",
	"ruby",
	"php",
	"go",
	"heroku",
	"render",
	"vercel",
	"netlify",
	"fly.io",
	"vps",
	"nginx",
	"stripe",
}

var audienceKeywords = []string{"audience", "target"}
