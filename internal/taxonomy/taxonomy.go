// Package taxonomy provides the static skill catalog used for extraction and
// matching: technical vocabulary by category, soft-skill phrases, and compound
// pattern rules.
package taxonomy

import "regexp"

// categoryOrder fixes the flattening order of the technical vocabulary so that
// extraction output is stable across runs.
var categoryOrder = []string{
	"programming_languages",
	"web_tech",
	"frontend_frameworks",
	"backend_frameworks",
	"mobile",
	"databases",
	"cloud_providers",
	"devops",
	"data_science",
	"version_control",
	"methodologies",
	"tools",
}

// technicalSkills is the catalog of known technical terms by category.
var technicalSkills = map[string][]string{
	"programming_languages": {
		"python", "java", "javascript", "js", "typescript", "ts", "c#", "c++", "c", "go", "golang",
		"ruby", "scala", "kotlin", "swift", "objective-c", "php", "perl", "r", "matlab", "rust",
		"dart", "haskell", "groovy", "bash", "powershell", "lua", "cobol", "fortran",
	},
	"web_tech": {
		"html", "css", "sass", "less", "bootstrap", "tailwind", "material ui", "responsive design",
		"rest", "restful", "graphql", "soap", "ajax", "json", "xml", "jwt", "oauth", "ssr", "webpack",
		"babel", "styled-components", "css modules", "cors", "grpc", "http", "https", "sse", "websocket",
	},
	"frontend_frameworks": {
		"react", "reactjs", "angular", "angularjs", "vue", "vuejs", "redux", "svelte", "next.js",
		"nuxt.js", "gatsby", "ember", "jquery", "backbone.js", "lit", "solid.js",
	},
	"backend_frameworks": {
		"express", "django", "flask", "spring", "spring boot", "rails", "ruby on rails", "asp.net",
		"laravel", "symfony", "fastapi", "nest.js", "gin", "phoenix", "play", "quarkus", "sails.js",
		"strapi", "meteor",
	},
	"mobile": {
		"android", "ios", "swift", "flutter", "react native", "xamarin", "ionic", "kotlin", "swiftui",
		"uikit", "jetpack compose", "android studio", "xcode", "objective-c", "mobile development",
	},
	"databases": {
		"sql", "mysql", "postgresql", "oracle", "mongodb", "cassandra", "redis", "sqlite",
		"dynamodb", "couchdb", "firebase", "neo4j", "elasticsearch", "mariadb", "cosmosdb",
		"nosql", "rdbms", "sql server", "mssql", "oledb", "jdbc", "odbc", "erd",
	},
	"cloud_providers": {
		"aws", "amazon web services", "azure", "microsoft azure", "gcp", "google cloud", "heroku",
		"digital ocean", "ibm cloud", "openstack", "alibaba cloud", "tencent cloud", "oracle cloud",
		"linode", "cloudflare",
	},
	"devops": {
		"docker", "kubernetes", "k8s", "terraform", "jenkins", "github actions", "gitlab ci",
		"circleci", "travis ci", "ansible", "puppet", "chef", "ci/cd", "github", "gitlab",
		"bitbucket", "prometheus", "grafana", "elk", "istio", "helm", "openshift",
	},
	"data_science": {
		"pandas", "numpy", "scikit-learn", "scipy", "matplotlib", "tensorflow", "pytorch", "keras",
		"machine learning", "ml", "deep learning", "dl", "neural networks", "cnn", "rnn", "lstm",
		"computer vision", "cv", "nlp", "natural language processing", "ai", "artificial intelligence",
		"data mining", "big data", "spark", "hadoop", "mapreduce", "tableau", "power bi",
	},
	"version_control": {
		"git", "github", "gitlab", "bitbucket", "svn", "subversion", "mercurial", "git flow",
		"version control",
	},
	"methodologies": {
		"agile", "scrum", "kanban", "waterfall", "tdd", "bdd", "xp", "lean", "devops",
		"ci/cd", "sre", "site reliability engineering", "itil",
	},
	"tools": {
		"vscode", "visual studio", "intellij", "pycharm", "eclipse", "atom", "sublime text",
		"notepad++", "postman", "insomnia", "jira", "confluence", "slack", "trello", "notion",
		"figma", "sketch", "adobe xd", "photoshop", "illustrator",
	},
}

// softSkills lists known soft-skill phrases, including hyphen/space variants of
// compound phrases.
var softSkills = []string{
	"leadership", "teamwork", "communication", "problem solving", "problem-solving",
	"critical thinking", "time management", "creativity", "adaptability", "flexibility",
	"organization", "organizational", "attention to detail", "interpersonal",
	"collaboration", "team player", "multitasking", "decision making", "decision-making",
	"conflict resolution", "emotional intelligence", "negotiation", "persuasion", "presentation",
	"customer service", "work ethic", "self-motivated", "self motivated", "proactive", "initiative",
	"analytical", "research", "resourceful", "planning", "mentoring", "coaching", "innovative",
	"strategic thinking", "project management", "agile",
}

// compoundPatterns capture technical mentions with optional version or
// qualifier suffixes that the flat vocabulary misses.
var compoundPatterns = []string{
	`(my|postgre|ms)sql( server)?( \d+)?`,
	`(aws|azure|gcp)( lambda| ec2| s3| rds| redshift| ecs| eks| vm| functions)?`,
	`(python|java|php|ruby)( \d+(\.\d+)*)?`,
	`(react|angular|vue|django|spring|rails)( js)?( \d+(\.\d+)*)?`,
	`(docker|kubernetes|k8s|openshift)( swarm| compose| container)?`,
	`(agile|scrum|kanban|waterfall)( methodology)?`,
	`(junit|pytest|jest|mocha|chai|jasmine|selenium|cypress|testng)`,
	`(jenkins|github actions|gitlab ci|circleci|travis)`,
}

// contextWords promote a 2-5 word key phrase to a technical skill when any of
// its words appears here.
var contextWords = []string{
	"software", "developer", "engineer", "programming", "development",
	"system", "database", "web", "mobile", "cloud", "data", "network",
	"security", "fullstack", "frontend", "backend", "devops", "architecture",
	"api", "service", "infrastructure", "platform", "framework", "library",
	"stack", "design", "coding", "script", "app", "application", "server",
	"client", "interface", "orm", "repository", "module", "package", "dependency",
}

// Catalog is the immutable skill taxonomy. Build one with New at startup and
// share it; it is safe for concurrent readers.
type Catalog struct {
	vocabulary   []string
	vocabSet     map[string]struct{}
	soft         []string
	patterns     []*regexp.Regexp
	contextWords map[string]struct{}
}

// New builds the catalog from the static tables, compiling all compound
// patterns up front.
func New() *Catalog {
	c := &Catalog{
		vocabSet:     make(map[string]struct{}),
		contextWords: make(map[string]struct{}, len(contextWords)),
	}

	for _, category := range categoryOrder {
		for _, skill := range technicalSkills[category] {
			if _, seen := c.vocabSet[skill]; seen {
				continue
			}
			c.vocabSet[skill] = struct{}{}
			c.vocabulary = append(c.vocabulary, skill)
		}
	}

	c.soft = append(c.soft, softSkills...)

	c.patterns = make([]*regexp.Regexp, 0, len(compoundPatterns))
	for _, p := range compoundPatterns {
		c.patterns = append(c.patterns, regexp.MustCompile(p))
	}

	for _, w := range contextWords {
		c.contextWords[w] = struct{}{}
	}

	return c
}

// Vocabulary returns the flattened technical vocabulary in catalog order.
// Callers must not modify the returned slice.
func (c *Catalog) Vocabulary() []string {
	return c.vocabulary
}

// Contains reports whether a term is in the flat technical vocabulary.
func (c *Catalog) Contains(term string) bool {
	_, ok := c.vocabSet[term]
	return ok
}

// SoftSkills returns the soft-skill phrase list. Callers must not modify the
// returned slice.
func (c *Catalog) SoftSkills() []string {
	return c.soft
}

// Patterns returns the compiled compound-mention patterns.
func (c *Catalog) Patterns() []*regexp.Regexp {
	return c.patterns
}

// IsContextWord reports whether a word signals technical context in a key phrase.
func (c *Catalog) IsContextWord(word string) bool {
	_, ok := c.contextWords[word]
	return ok
}
