package generator

import (
	"fmt"
	"strings"
	"time"

	"github.com/balkashynov/trackgen/internal/models"
)

const (
	// UserCount is the fixed synthetic workforce size
	UserCount = 50
	// unmanagedUsers have no manager
	unmanagedUsers = 5
	// managerPool is the range of user numbers that can manage others
	managerPool = 10

	weeklyCapacityHours = 40
)

func accountID(n int) string { return fmt.Sprintf("ACC%03d", n) }
func userID(n int) string    { return fmt.Sprintf("USR%04d", n) }
func projectID(n int) string { return fmt.Sprintf("PRJ%03d", n) }
func taskID(n int) string    { return fmt.Sprintf("TSK%05d", n) }
func sessionID(n int) string { return fmt.Sprintf("SES%08d", n) }

// roundRobinAccount spreads entity n over the fixed accounts
func roundRobinAccount(n int) string {
	return accountID(n%len(accountSeeds) + 1)
}

// GenerateAccounts returns the fixed customer accounts with fake contacts
func GenerateAccounts(r *Rand) []models.Account {
	accounts := make([]models.Account, 0, len(accountSeeds))
	for i, seed := range accountSeeds {
		a := seed
		a.AccountStatus = "active"
		a.CreatedDate = mustDate(accountCreatedDates[i])
		a.PrimaryContact = r.Email()
		accounts = append(accounts, a)
	}
	return accounts
}

// GenerateUsers creates UserCount employees assigned round-robin to accounts.
// Hire dates fall between three years and one month before asOf.
func GenerateUsers(r *Rand, asOf time.Time) []models.User {
	users := make([]models.User, 0, UserCount)
	for i := 1; i <= UserCount; i++ {
		first := r.FirstName()
		last := r.LastName()

		u := models.User{
			UserID:              userID(i),
			AccountID:           roundRobinAccount(i),
			Email:               fmt.Sprintf("%s.%s@company.com", strings.ToLower(first), strings.ToLower(last)),
			FirstName:           first,
			LastName:            last,
			Role:                Pick(r, userRoles),
			Department:          Pick(r, userDepartments),
			Status:              "active",
			WeeklyCapacityHours: weeklyCapacityHours,
		}
		if i > unmanagedUsers {
			manager := userID(r.IntRange(1, managerPool))
			u.ManagerID = &manager
		}
		u.HireDate = r.DateBetween(asOf.AddDate(-3, 0, 0), asOf.AddDate(0, -1, 0))
		u.Timezone = Pick(r, userTimezones)

		users = append(users, u)
	}
	return users
}

// GenerateApplications returns the app catalogue with random versions
func GenerateApplications(r *Rand) []models.Application {
	apps := make([]models.Application, 0, len(applicationSeeds))
	for _, seed := range applicationSeeds {
		a := seed
		a.IsWebBased = isWebBased(a.AppName)
		apps = append(apps, a)
	}
	for i := range apps {
		apps[i].Version = fmt.Sprintf("%d.%d", r.IntRange(1, 4), r.IntRange(0, 9))
	}
	return apps
}

// GenerateProjects creates one project per fixed name.
// Start dates fall six to one months before asOf; about 30% are open-ended.
func GenerateProjects(r *Rand, asOf time.Time) []models.Project {
	projects := make([]models.Project, 0, len(projectNames))
	for i, name := range projectNames {
		n := i + 1
		p := models.Project{
			ProjectID:   projectID(n),
			AccountID:   roundRobinAccount(n),
			ProjectName: name,
			Status:      Pick(r, projectStatuses),
			StartDate:   r.DateBetween(asOf.AddDate(0, -6, 0), asOf.AddDate(0, -1, 0)),
		}
		if r.Chance(0.7) {
			end := r.DateBetween(asOf, asOf.AddDate(0, 6, 0))
			p.EndDate = &end
		}
		p.BudgetedHours = r.IntRange(50, 500)
		p.Priority = Pick(r, projectPriorities)

		projects = append(projects, p)
	}
	return projects
}

// GenerateTasks creates 3-8 tasks per project, numbered across all projects
func GenerateTasks(r *Rand, projects []models.Project, asOf time.Time) []models.Task {
	var tasks []models.Task
	next := 1
	for _, p := range projects {
		count := r.IntRange(3, 8)
		for j := 0; j < count; j++ {
			tasks = append(tasks, models.Task{
				TaskID:         taskID(next),
				ProjectID:      p.ProjectID,
				TaskName:       Pick(r, taskTypes),
				TaskStatus:     Pick(r, taskStatuses),
				EstimatedHours: r.IntRange(1, 20),
				CreatedDate:    r.DateBetween(asOf.AddDate(0, -3, 0), asOf),
			})
			next++
		}
	}
	return tasks
}

// tasksByProject indexes tasks under their owning project
func tasksByProject(tasks []models.Task) map[string][]models.Task {
	idx := make(map[string][]models.Task)
	for _, t := range tasks {
		idx[t.ProjectID] = append(idx[t.ProjectID], t)
	}
	return idx
}

func mustDate(s string) time.Time {
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}
