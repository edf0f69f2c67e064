package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strconv"

	"github.com/mishasvintus/codejam_client/internal/domain"
)

func registerCommands(r *CommandRegistry, a *app) {
	r.Register(&Command{
		Name:        "status",
		Description: "Load the session, active event and event statuses",
		Usage:       "codejam status [-as user-id]",
		Examples:    []string{"codejam status", "codejam status -as 0b8e..."},
		Run:         a.statusCommand,
	})
	r.Register(&Command{
		Name:        "events",
		Description: "List all events",
		Usage:       "codejam events",
		Run:         a.eventsCommand,
	})
	r.Register(&Command{
		Name:        "teams",
		Description: "List teams",
		Usage:       "codejam teams [-mine] [-as user-id]",
		Examples:    []string{"codejam teams", "codejam teams -mine -as 0b8e..."},
		Run:         a.teamsCommand,
	})
	r.Register(&Command{
		Name:        "team",
		Description: "Show a team with its members",
		Usage:       "codejam team <team-id> | codejam team -invite <code>",
		Run:         a.teamCommand,
	})
	r.Register(&Command{
		Name:        "create-team",
		Description: "Create a team for an event",
		Usage:       "codejam create-team -as user-id -event <event-id> -name <name> [-visibility public|private]",
		Run:         a.createTeamCommand,
	})
	r.Register(&Command{
		Name:        "join",
		Description: "Join a public team, or a private one with its invite code",
		Usage:       "codejam join -as user-id [-invite code] <team-id>",
		Run:         a.joinCommand,
	})
	r.Register(&Command{
		Name:        "profile",
		Description: "Change your display name",
		Usage:       "codejam profile -as user-id <display-name>",
		Run:         a.profileCommand,
	})
	r.Register(&Command{
		Name:        "logout",
		Description: "End the current session",
		Usage:       "codejam logout [-as user-id]",
		Run:         a.logoutCommand,
	})
	r.Register(&Command{
		Name:        "admin-users",
		Description: "List every user (admin only)",
		Usage:       "codejam admin-users -as admin-id",
		Run:         a.adminUsersCommand,
	})
	r.Register(&Command{
		Name:        "ban",
		Description: "Ban a user (admin only)",
		Usage:       "codejam ban -as admin-id <user-id>",
		Run:         a.moderationCommand("ban"),
	})
	r.Register(&Command{
		Name:        "unban",
		Description: "Lift a ban (admin only)",
		Usage:       "codejam unban -as admin-id <user-id>",
		Run:         a.moderationCommand("unban"),
	})
	r.Register(&Command{
		Name:        "lock-name",
		Description: "Lock or unlock a user's display name (admin only)",
		Usage:       "codejam lock-name -as admin-id [-unlock] <user-id>",
		Run:         a.lockNameCommand,
	})
}

// parse parses args, registering -as, and logs in when it is set.
func (a *app) parse(ctx context.Context, fs *flag.FlagSet, args []string) error {
	as := fs.String("as", "", "log in against the mock API as this user id first")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return a.loginAs(ctx, *as)
}

func (a *app) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	fs.Usage = func() {}
	return fs
}

func (a *app) statusCommand(ctx context.Context, args []string) error {
	if err := a.parse(ctx, a.flags("status"), args); err != nil {
		return err
	}

	stores := a.client.Stores
	unsubscribe := stores.Session.Subscribe(func(s domain.Session) {
		if !s.LoggedIn {
			fmt.Fprintln(a.out, "session: logged out")
			return
		}
		fmt.Fprintf(a.out, "session: logged in as %s (%s)\n", s.User.DisplayName, s.User.ID)
	})
	defer unsubscribe()

	report := a.client.Bootstrap.Run(ctx)

	switch event := stores.ActiveEvent.Get(); {
	case !stores.ActiveEvent.Loaded():
		fmt.Fprintln(a.out, "active event: unknown")
	case event == nil:
		fmt.Fprintln(a.out, "active event: none")
	default:
		fmt.Fprintf(a.out, "active event: %s\n", event.ID)
	}
	fmt.Fprintf(a.out, "event statuses: %d\n", len(stores.EventStatuses.Get()))

	for name, err := range report.Failures {
		fmt.Fprintf(a.out, "failed: %s: %v\n", name, err)
	}
	if !report.OK() {
		return errors.New("startup incomplete")
	}
	return nil
}

func (a *app) eventsCommand(ctx context.Context, args []string) error {
	if err := a.parse(ctx, a.flags("events"), args); err != nil {
		return err
	}
	events, err := a.client.Events.ListEvents(ctx)
	if err != nil {
		return err
	}
	for _, e := range events {
		fmt.Fprintln(a.out, string(e.Raw()))
	}
	return nil
}

func (a *app) teamsCommand(ctx context.Context, args []string) error {
	fs := a.flags("teams")
	mine := fs.Bool("mine", false, "only teams you belong to")
	if err := a.parse(ctx, fs, args); err != nil {
		return err
	}

	list := a.client.Teams.BrowseTeams
	if *mine {
		list = a.client.Teams.UserTeams
	}
	teams, err := list(ctx)
	if err != nil {
		return err
	}

	table := NewTableWriter("ID", "NAME", "EVENT", "VISIBILITY", "MEMBERS")
	for _, t := range teams {
		table.AddRow(t.ID, t.Name, t.EventID, string(t.Visibility), strconv.Itoa(len(t.Members)))
	}
	table.Print(a.out)
	return nil
}

func (a *app) teamCommand(ctx context.Context, args []string) error {
	fs := a.flags("team")
	invite := fs.String("invite", "", "look the team up by invite code")
	if err := a.parse(ctx, fs, args); err != nil {
		return err
	}

	var (
		info *domain.TeamInfo
		err  error
	)
	if *invite != "" {
		info, err = a.client.Teams.GetTeamByInvite(ctx, *invite)
	} else {
		info, err = a.client.Teams.GetTeam(ctx, fs.Arg(0))
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s (%s) %s\n", info.Team.Name, info.Team.ID, info.Team.Visibility)
	if info.Event != nil {
		fmt.Fprintf(a.out, "event: %s\n", info.Event.ID)
	}
	table := NewTableWriter("USER", "NAME", "ROLE")
	for _, m := range info.Members {
		table.AddRow(m.UserID, m.DisplayName, m.TeamRole)
	}
	table.Print(a.out)
	return nil
}

func (a *app) createTeamCommand(ctx context.Context, args []string) error {
	fs := a.flags("create-team")
	eventID := fs.String("event", "", "event id")
	name := fs.String("name", "", "team name")
	visibility := fs.String("visibility", string(domain.VisibilityPublic), "public, or private to require an invite code")
	if err := a.parse(ctx, fs, args); err != nil {
		return err
	}
	if *eventID == "" || *name == "" {
		return errors.New("-event and -name are required")
	}

	team := domain.NewTeam()
	team.EventID = *eventID
	team.Name = *name
	v, err := domain.NewVisibility(*visibility)
	if err != nil {
		return err
	}
	team.Visibility = v
	id, err := a.client.Teams.CreateTeam(ctx, team)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, id)
	return nil
}

func (a *app) joinCommand(ctx context.Context, args []string) error {
	fs := a.flags("join")
	invite := fs.String("invite", "", "invite code of a private team")
	if err := a.parse(ctx, fs, args); err != nil {
		return err
	}
	teamID := fs.Arg(0)

	if *invite != "" {
		if err := a.client.Teams.JoinTeam(ctx, teamID, *invite); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "joined %s\n", teamID)
		return nil
	}
	joined, err := a.client.Teams.JoinPublicTeam(ctx, teamID)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "joined %s\n", joined)
	return nil
}

func (a *app) profileCommand(ctx context.Context, args []string) error {
	fs := a.flags("profile")
	if err := a.parse(ctx, fs, args); err != nil {
		return err
	}
	form, err := a.client.Users.UpdateProfile(ctx, fs.Arg(0))
	if err != nil {
		return err
	}
	if len(form.Errors) > 0 {
		for field, msg := range form.Errors {
			fmt.Fprintf(a.out, "%s: %s\n", field, msg)
		}
		return errors.New("profile not saved")
	}
	fmt.Fprintf(a.out, "display name: %s\n", form.Data.DisplayName)
	return nil
}

func (a *app) logoutCommand(ctx context.Context, args []string) error {
	if err := a.parse(ctx, a.flags("logout"), args); err != nil {
		return err
	}
	if err := a.client.Users.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "logged out")
	return nil
}

func (a *app) adminUsersCommand(ctx context.Context, args []string) error {
	if err := a.parse(ctx, a.flags("admin-users"), args); err != nil {
		return err
	}
	users, err := a.client.Admin.ListUsers(ctx)
	if err != nil {
		return err
	}

	table := NewTableWriter("ID", "NAME", "ROLE", "STATUS", "LOCKED")
	for _, u := range users {
		table.AddRow(u.ID, u.DisplayName, string(u.Role), string(u.AccountStatus), strconv.FormatBool(u.LockDisplayName))
	}
	table.Print(a.out)
	return nil
}

func (a *app) moderationCommand(action string) func(context.Context, []string) error {
	return func(ctx context.Context, args []string) error {
		fs := a.flags(action)
		if err := a.parse(ctx, fs, args); err != nil {
			return err
		}

		apply := a.client.Admin.Ban
		if action == "unban" {
			apply = a.client.Admin.Unban
		}
		user, err := apply(ctx, fs.Arg(0))
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "%s: %s\n", user.ID, user.AccountStatus)
		return nil
	}
}

func (a *app) lockNameCommand(ctx context.Context, args []string) error {
	fs := a.flags("lock-name")
	unlock := fs.Bool("unlock", false, "unlock instead of lock")
	if err := a.parse(ctx, fs, args); err != nil {
		return err
	}
	user, err := a.client.Admin.SetDisplayNameLock(ctx, fs.Arg(0), !*unlock)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s: locked=%t\n", user.ID, user.LockDisplayName)
	return nil
}
