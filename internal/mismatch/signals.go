package mismatch

// jobITSignals mark a job as an IT position even when another industry wins.
var jobITSignals = []string{
	"head of it", "cto", "chief technology officer", "cio", "chief information officer",
	"information technology", "it governance", "it infrastructure", "it security", "it manager",
	"it director", "it department", "it-leiter", "it-leiterin", "cybersecurity", "cyber security",
	"software engineer", "software developer", "developer", "entwickler", "devops",
	"system administrator", "informatik",
}

// profileITStems are long, unambiguous IT stems. They match inside compounds
// such as "softwareentwickler" or "Acme Software GmbH".
var profileITStems = []string{
	"software", "developer", "entwickler", "programmer", "programmier", "informatik", "devops",
	"sysadmin", "cybersecurity", "kubernetes", "javascript", "typescript", "golang", "postgres",
	"mysql", "cloud",
}

// profileITPrefixes start IT compounds like "IT-Leiter" or "IT-Projektmanager".
var profileITPrefixes = []string{"it-"}

// profileITWords must stand as a whole word; a hyphen joins words, so "go"
// does not hit "Go-to-Market" and "rust" does not hit "Customer Trust".
var profileITWords = []string{
	"system administrator", "data engineer", "data scientist", "cyber security", "aws",
	"azure", "docker", "linux", "java", "python", "go", "c#", "c++", "ruby", "php", "kotlin",
	"rust", "scala", "sql", "html", "css", "react", "angular", "node.js", ".net",
}

// itAbbreviation is only accepted in upper case, "it" is an ordinary English word.
const itAbbreviation = "IT"
