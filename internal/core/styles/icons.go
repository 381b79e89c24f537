package styles

// Tip: To find icons use https://github.com/loichyan/nerdfix

// Notification icons
var (
	IconNotifySuccess = "" // nf-fa-check_circle
	IconNotifyError   = "" // nf-fa-times_circle
	IconNotifyWarning = "" // nf-fa-exclamation_triangle
	IconNotifyInfo    = "" // nf-fa-info_circle
	IconClose         = "" // nf-fa-close
	IconBell          = "" // nf-fa-bell
)

// Showcase widget icons
var (
	IconButton    = "" // nf-fa-hand_o_up
	IconAccordion = "" // nf-fa-bars
	IconBadge     = "" // nf-fa-tag
	IconTooltip   = "" // nf-fa-comment
	IconInput     = "" // nf-fa-keyboard_o
)
