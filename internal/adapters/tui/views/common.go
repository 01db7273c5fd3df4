package views

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// Dialog-opening messages, emitted by the table view and handled by the app.

// ShowMoveDialogMsg opens the move dialog for the given entry paths.
type ShowMoveDialogMsg struct {
	Paths []string
}

// ShowDeleteDialogMsg opens the delete confirmation for the given entry paths.
type ShowDeleteDialogMsg struct {
	Paths []string
}

// ShowRenameDialogMsg opens the rename dialog for the cursor entry.
type ShowRenameDialogMsg struct {
	Path string
}

// ShowNewEntryDialogMsg opens the new-entry dialog.
type ShowNewEntryDialogMsg struct{}

// ShowFindDialogMsg opens the fuzzy find dialog over the given entry paths.
type ShowFindDialogMsg struct {
	Paths []string
}

// Dialog-result messages, emitted by dialogs and routed back to the table.

// CloseDialogMsg dismisses the active dialog with no effect on the store.
type CloseDialogMsg struct{}

// MoveRequestedMsg carries a confirmed move dialog result.
type MoveRequestedMsg struct {
	Destination  string
	KeepCategory bool
}

// DeleteConfirmedMsg carries a confirmed delete.
type DeleteConfirmedMsg struct{}

// RenameRequestedMsg carries a confirmed rename dialog result.
type RenameRequestedMsg struct {
	NewName string
}

// InsertRequestedMsg carries a confirmed new-entry dialog result.
type InsertRequestedMsg struct {
	Directory string
	Name      string
	Username  string
	Secret    string
}

// FindSelectedMsg carries the entry path chosen in the find dialog.
type FindSelectedMsg struct {
	Path string
}

// EditRequestedMsg asks the app to suspend the session and open pass edit for
// the cursor entry.
type EditRequestedMsg struct{}
