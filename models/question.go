package models

// Question status values.
const (
	QuestionStatusNew      = "new"
	QuestionStatusAnswered = "answered"
)

// MaxAttachmentSize caps inline question attachments at 5MiB.
const MaxAttachmentSize = 5 * 1024 * 1024

// QuestionAttachment is a single inline-encoded file attached to a question.
type QuestionAttachment struct {
	Name    string `bson:"name" json:"name"`
	Type    string `bson:"type" json:"type"` // MIME type
	Size    int64  `bson:"size" json:"size"` // bytes
	DataURL string `bson:"dataUrl" json:"dataUrl"`
}

// Question is a student inquiry addressed to their assigned advisor.
// Status moves new -> answered; nothing transitions it back.
type Question struct {
	ID             string              `bson:"id" json:"id"`
	StudentID      string              `bson:"studentId" json:"studentId"`
	StudentName    string              `bson:"studentName" json:"studentName"`
	LecturerID     string              `bson:"lecturerId" json:"lecturerId"`
	Title          string              `bson:"title" json:"title"`
	QuestionText   string              `bson:"questionText" json:"questionText"`
	AnswerText     string              `bson:"answerText,omitempty" json:"answerText,omitempty"`
	Status         string              `bson:"status" json:"status"` // "new" or "answered"
	SubmissionTime int64               `bson:"submissionTime" json:"submissionTime"` // unix millis
	Attachment     *QuestionAttachment `bson:"attachment,omitempty" json:"attachment,omitempty"`
}

// AskQuestionRequest is the payload for submitting a new question. The
// identity fields are filled server-side from the authenticated caller and
// their profile, never from the request body.
type AskQuestionRequest struct {
	StudentID    string              `json:"-"`
	StudentName  string              `json:"-"`
	LecturerID   string              `json:"-"`
	Title        string              `json:"title"`
	QuestionText string              `json:"questionText"`
	Attachment   *QuestionAttachment `json:"attachment,omitempty"`
}
