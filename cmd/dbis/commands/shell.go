package commands

import (
	"fmt"

	"github.com/dbisys/dbis-client/internal/utils"
	"github.com/dbisys/dbis-client/session"
	"github.com/dbisys/dbis-client/token"
)

// terminalShell is the CLI stand-in for the application shell. The session
// core drives it through the same two calls the full UI gets.
type terminalShell struct {
	sessions session.Repository
}

func (t *terminalShell) ShowLoginScreen() {
	fmt.Println("Not logged in. Run: dbis login -u <username> -p <password>")
}

func (t *terminalShell) ShowMainApp() {
	sess, err := t.sessions.Load()
	if err != nil || !sess.Active() {
		return
	}
	printUserInfo(sess)
}

// printUserInfo renders the session-derived display fields: username with an
// offline indicator, the server mode line and the company.
func printUserInfo(sess *session.Session) {
	profile := sess.Profile

	mode := ""
	server := "LOCALHOST"
	if profile.OfflineMode {
		mode = " (OFFLINE)"
		server = "OFFLINE"
	}

	fmt.Printf("USER: %s%s\n", profile.Username, mode)
	fmt.Printf("SERVER: %s\n", server)
	if profile.Company != "" {
		fmt.Printf("COMPANY: %s\n", profile.Company)
	}
	if role := utils.Value(profile.Role); role != "" {
		fmt.Printf("ROLE: %s\n", role)
	}

	if sess.AccessToken != "" {
		if claims, err := token.Inspect(sess.AccessToken); err == nil && !claims.ExpiresAt.IsZero() {
			fmt.Printf("TOKEN EXPIRES: %s\n", claims.ExpiresAt.Format("2006-01-02 15:04:05"))
		}
	}
}
