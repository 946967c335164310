package shell

import "toodle/internal/markdown"

const helpWidth = 72

const helpText = `# Commands

- ` + "`todo <description>`" + `: add a plain task
- ` + "`deadline <description> /by <date time>`" + `: add a task due by a date and time
- ` + "`event <description> /at <date time>`" + `: add an event at a date and time
- ` + "`list`" + `: show every task with its task number
- ` + "`done <number>`" + ` or ` + "`done all`" + `: mark tasks as done
- ` + "`remove <number>`" + ` or ` + "`remove all`" + `: remove tasks (alias: ` + "`delete`" + `)
- ` + "`find <keyword>`" + `: show tasks whose description contains the keyword
- ` + "`sort name|type|datetime`" + `: reorder the list
- ` + "`start <number> <date> <time>`" + `: set a task's date and time
- ` + "`help`" + `: show this message
- ` + "`bye`" + `: save and exit (aliases: ` + "`quit`" + `, ` + "`exit`" + `)
`

// helpMessage renders the command reference for terminal output, falling
// back to the raw text when markdown rendering is unavailable.
func helpMessage() string {
	rendered := markdown.Render(helpWidth, helpText)
	if rendered == "" {
		return helpText
	}
	return rendered
}
