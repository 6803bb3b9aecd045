package notification

import "fmt"

// Message texts shown to students and lecturers. The product ships in
// Indonesian.

func BookingConfirmedMessage(date, timeOfDay string) string {
	return fmt.Sprintf("Anda berhasil memesan jadwal pada %s jam %s.", date, timeOfDay)
}

func SlotBookedMessage(studentName string) string {
	return fmt.Sprintf("%s telah memesan jadwal Anda.", studentName)
}

func NewSlotMessage(date, timeOfDay string) string {
	return fmt.Sprintf("Dosen PA Anda menambahkan jadwal baru pada %s jam %s.", date, timeOfDay)
}

func ConsultationCompletedMessage(date, timeOfDay string) string {
	return fmt.Sprintf("Konsultasi pada %s jam %s telah selesai.", date, timeOfDay)
}

func ConsultationReminderMessage(date, timeOfDay string) string {
	return fmt.Sprintf("Pengingat: Anda memiliki jadwal konsultasi hari ini, %s jam %s.", date, timeOfDay)
}

func QuestionSentMessage(title string) string {
	return fmt.Sprintf("Pertanyaan %q telah terkirim.", title)
}

func NewQuestionMessage(studentName string) string {
	return fmt.Sprintf("Pertanyaan baru dari %s.", studentName)
}

func QuestionAnsweredMessage(title string) string {
	return fmt.Sprintf("Pertanyaan %q telah dijawab.", title)
}

func InterestsUpdatedMessage() string {
	return "Minat jurusan Anda berhasil diperbarui."
}
