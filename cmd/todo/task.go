package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/todokata/todokata/pkg/todo"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long:  `List every task the API holds.`,
	Run: func(cmd *cobra.Command, args []string) {
		c, _, err := getClient()
		if err != nil {
			handleError(err)
		}

		handleError(runList(cmd.Context(), c, os.Stdout, jsonOutput))
	},
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show task details",
	Long:  `Display a single task.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c, _, err := getClient()
		if err != nil {
			handleError(err)
		}

		handleError(runShow(cmd.Context(), c, os.Stdout, args[0], jsonOutput))
	},
}

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a task",
	Long: `Add a task with the given title.

The owner defaults to user_id from the config files, or "1".`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		user, _ := cmd.Flags().GetString("user")
		completed, _ := cmd.Flags().GetBool("completed")

		c, cfg, err := getClient()
		if err != nil {
			handleError(err)
		}
		if !cmd.Flags().Changed("user") {
			user = cfg.UserID
		}

		handleError(runAdd(cmd.Context(), c, os.Stdout, user, args[0], completed, jsonOutput))
	},
}

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a task",
	Long: `Replace a task. Fields not given as flags keep their current value.

Example:
  todo update 1 --title "Buy milk" --completed`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var changes taskChanges

		if cmd.Flags().Changed("user") {
			user, _ := cmd.Flags().GetString("user")
			changes.userID = &user
		}
		if cmd.Flags().Changed("title") {
			title, _ := cmd.Flags().GetString("title")
			changes.title = &title
		}
		if cmd.Flags().Changed("completed") {
			completed, _ := cmd.Flags().GetBool("completed")
			changes.completed = &completed
		}

		if changes.empty() {
			handleError(fmt.Errorf("nothing to update: pass --user, --title or --completed"))
		}

		c, _, err := getClient()
		if err != nil {
			handleError(err)
		}

		handleError(runUpdate(cmd.Context(), c, os.Stdout, args[0], changes, jsonOutput))
	},
}

var rmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete a task",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c, _, err := getClient()
		if err != nil {
			handleError(err)
		}

		handleError(runRemove(cmd.Context(), c, os.Stdout, args[0], jsonOutput))
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(rmCmd)

	addCmd.Flags().String("user", "", "Owner of the new task")
	addCmd.Flags().Bool("completed", false, "Create the task already completed")

	updateCmd.Flags().String("user", "", "New owner")
	updateCmd.Flags().String("title", "", "New title")
	updateCmd.Flags().Bool("completed", false, "Completion state (--completed=false to reopen)")
}

// taskChanges holds the fields an update sets. Nil fields are left alone.
type taskChanges struct {
	userID    *string
	title     *string
	completed *bool
}

func (c taskChanges) empty() bool {
	return c.userID == nil && c.title == nil && c.completed == nil
}

func (c taskChanges) applyTo(task todo.Task) todo.Task {
	if c.userID != nil {
		task.UserID = *c.userID
	}
	if c.title != nil {
		task = task.WithTitle(*c.title)
	}
	if c.completed != nil {
		task = task.WithCompleted(*c.completed)
	}
	return task
}

func runList(ctx context.Context, c *todo.Client, w io.Writer, asJSON bool) error {
	tasks, err := todo.Await(func(done func(todo.Result[[]todo.Task])) {
		c.GetAllTasks(ctx, done)
	}).Get()
	if err != nil {
		return err
	}

	printTaskList(w, tasks, asJSON)
	return nil
}

func runShow(ctx context.Context, c *todo.Client, w io.Writer, id string, asJSON bool) error {
	task, err := getTask(ctx, c, id)
	if err != nil {
		return err
	}

	printTask(w, task, asJSON)
	return nil
}

func runAdd(ctx context.Context, c *todo.Client, w io.Writer, userID, title string, completed, asJSON bool) error {
	task, err := todo.Await(func(done func(todo.Result[todo.Task])) {
		c.AddTaskToUser(ctx, userID, title, completed, done)
	}).Get()
	if err != nil {
		return err
	}

	printTask(w, task, asJSON)
	return nil
}

// runUpdate fetches the current task so that a partial change can be sent
// as the full replacement the API expects.
func runUpdate(ctx context.Context, c *todo.Client, w io.Writer, id string, changes taskChanges, asJSON bool) error {
	current, err := getTask(ctx, c, id)
	if err != nil {
		return err
	}

	task, err := todo.Await(func(done func(todo.Result[todo.Task])) {
		c.UpdateTask(ctx, changes.applyTo(current), done)
	}).Get()
	if err != nil {
		return err
	}

	printTask(w, task, asJSON)
	return nil
}

func runRemove(ctx context.Context, c *todo.Client, w io.Writer, id string, asJSON bool) error {
	_, err := todo.Await(func(done func(todo.Result[todo.Unit])) {
		c.DeleteTaskByID(ctx, id, done)
	}).Get()
	if err != nil {
		return err
	}

	printSuccess(w, fmt.Sprintf("Deleted task %s", id), asJSON)
	return nil
}

func getTask(ctx context.Context, c *todo.Client, id string) (todo.Task, error) {
	return todo.Await(func(done func(todo.Result[todo.Task])) {
		c.GetTaskByID(ctx, id, done)
	}).Get()
}
