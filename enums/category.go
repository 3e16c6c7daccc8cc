package enums

type MessageCategory string

const (
	MessageCategoryInbox  MessageCategory = "inbox"
	MessageCategoryUnread MessageCategory = "unread"
	MessageCategorySent   MessageCategory = "sent"
)

func (c MessageCategory) Valid() bool {
	switch c {
	case MessageCategoryInbox, MessageCategoryUnread, MessageCategorySent:
		return true
	}
	return false
}
