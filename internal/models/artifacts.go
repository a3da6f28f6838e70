package models

// Artifact names, in generation and load order.
const (
	ArtifactAccounts     = "dim_accounts"
	ArtifactUsers        = "dim_users"
	ArtifactApplications = "dim_applications"
	ArtifactProjects     = "dim_projects"
	ArtifactTasks        = "dim_tasks"
	ArtifactSessions     = "fact_activity_sessions"
)

// RawTablePrefix is prepended to an artifact name to get its store table.
const RawTablePrefix = "raw_"

// Artifacts lists every artifact the generator writes and the loader expects
var Artifacts = []string{
	ArtifactAccounts,
	ArtifactUsers,
	ArtifactApplications,
	ArtifactProjects,
	ArtifactTasks,
	ArtifactSessions,
}

// ArtifactFile returns the CSV file name of an artifact.
func ArtifactFile(name string) string {
	return name + ".csv"
}

// RawTable returns the store table name for an artifact.
func RawTable(name string) string {
	return RawTablePrefix + name
}
