package notifications

// Seed returns the inbox a new workspace starts with.
func Seed() []Notification {
	return []Notification{
		{
			ID: 1, Type: TypeOrder, Time: "2 min ago",
			Title: "New order received", TitleAr: "تم استلام طلب جديد",
			Message: "Order ORD-1008 was placed by Tarek Fawzy.", MessageAr: "تم إنشاء الطلب ORD-1008 بواسطة طارق فوزي.",
		},
		{
			ID: 2, Type: TypePayment, Time: "15 min ago",
			Title: "Payment confirmed", TitleAr: "تم تأكيد الدفع",
			Message: "Payment for ORD-1007 was captured.", MessageAr: "تم تحصيل دفعة الطلب ORD-1007.",
		},
		{
			ID: 3, Type: TypeUser, Time: "1 hour ago",
			Title: "User suspended", TitleAr: "تم إيقاف مستخدم",
			Message: "Omar Hassan was suspended by an admin.", MessageAr: "تم إيقاف عمر حسن بواسطة المسؤول.",
		},
		{
			ID: 4, Type: TypeSystem, Time: "3 hours ago", Read: true,
			Title: "Scheduled maintenance", TitleAr: "صيانة مجدولة",
			Message: "The system will be updated tonight at 02:00.", MessageAr: "سيتم تحديث النظام الليلة الساعة 02:00.",
		},
		{
			ID: 5, Type: TypeOrder, Time: "Yesterday", Read: true,
			Title: "Order cancelled", TitleAr: "تم إلغاء الطلب",
			Message: "Order ORD-1003 was cancelled by the customer.", MessageAr: "قام العميل بإلغاء الطلب ORD-1003.",
		},
		{
			ID: 6, Type: TypeSystem, Time: "2 days ago",
			Title: "Backup completed", TitleAr: "اكتمل النسخ الاحتياطي",
			Message: "The nightly backup finished successfully.", MessageAr: "اكتمل النسخ الاحتياطي الليلي بنجاح.",
		},
	}
}
