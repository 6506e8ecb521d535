package i18n

var english = map[string]string{
	"app.name":            "Admin Console",
	"nav.analytics":       "Analytics",
	"nav.users":           "Users",
	"nav.orders":          "Orders",
	"nav.products":        "Products",
	"nav.notifications":   "Notifications",
	"nav.settings":        "Settings",
	"nav.logout":          "Log out",
	"common.search":       "Search",
	"common.all":          "All",
	"common.page":         "Page",
	"common.of":           "of",
	"common.prev":         "Previous",
	"common.next":         "Next",
	"common.actions":      "Actions",
	"common.apply":        "Apply",
	"common.save":         "Save",
	"common.cancel":       "Cancel",
	"common.no_results":   "No results",
	"common.error":        "Something went wrong",
	"topbar.mode_dark":    "Dark mode",
	"topbar.mode_light":   "Light mode",
	"topbar.sidebar":      "Toggle sidebar",
	"topbar.language":     "عربي",
	"login.title":         "Sign in",
	"login.subtitle":      "Use your admin account to continue.",
	"login.email":         "Email",
	"login.password":      "Password",
	"login.submit":        "Sign in",
	"login.invalid":       "Invalid credentials",
	"login.welcome":       "Welcome back",
	"users.title":         "Users",
	"users.subtitle":      "Manage accounts, roles and access status.",
	"users.total":         "Total users",
	"users.active":        "Active users",
	"users.admins":        "Admins",
	"users.add":           "Add user",
	"users.edit":          "Edit user",
	"users.delete":        "Delete",
	"users.id":            "ID",
	"users.name":          "Name",
	"users.email":         "Email",
	"users.role":          "Role",
	"users.status":        "Status",
	"users.created":       "Created",
	"users.export":        "Export CSV",
	"users.added":         "User added",
	"users.updated":       "User updated",
	"users.deleted":       "User deleted",
	"users.exported":      "Users exported to CSV",
	"role.Admin":          "Admin",
	"role.Manager":        "Manager",
	"role.User":           "User",
	"status.Active":       "Active",
	"status.Suspended":    "Suspended",
	"status.Paid":         "Paid",
	"status.Pending":      "Pending",
	"status.Cancelled":    "Cancelled",
	"orders.title":        "Orders",
	"orders.subtitle":     "View and manage customer orders and payment/shipping status.",
	"orders.id":           "Order ID",
	"orders.customer":     "Customer",
	"orders.amount":       "Amount",
	"orders.status":       "Status",
	"orders.date":         "Date",
	"orders.view":         "View details",
	"orders.export":       "Export CSV",
	"orders.exported":     "Orders exported to CSV",
	"orders.total":        "Total orders",
	"orders.revenue":      "Total revenue",
	"orders.paid":         "Paid orders",
	"order.title":         "Order details",
	"order.items":         "Items",
	"order.qty":           "Qty",
	"order.price":         "Price",
	"order.line_total":    "Total",
	"order.payment":       "Payment method",
	"order.timeline":      "Timeline",
	"order.back":          "Back to orders",
	"order.not_found":     "Order not found",
	"order.not_found_msg": "The order you are looking for does not exist.",
	"products.title":      "Products",
	"products.subtitle":   "Browse the catalogue, stock levels and ratings.",
	"products.sku":        "SKU",
	"products.name":       "Name",
	"products.category":   "Category",
	"products.price":      "Price",
	"products.stock":      "Stock",
	"products.rating":     "Rating",
	"products.in_stock":   "In stock",
	"products.out":        "Out of stock",
	"products.total":      "Total products",
	"products.in_count":   "In stock",
	"products.categories": "Categories",
	"products.avg_price":  "Average price",
	"products.grid":       "Grid",
	"products.table":      "Table",
	"notifications.title":      "Notifications",
	"notifications.subtitle":   "View and manage all system, order and user alerts.",
	"notifications.mark_all":   "Mark all as read",
	"notifications.mark_read":  "Mark as read",
	"notifications.marked_all": "All notifications marked as read",
	"toast.dismiss":            "Dismiss",
	"notifications.read":       "Read",
	"notifications.unread":     "Unread",
	"notifications.empty":      "No notifications",
	"filter.all":               "All",
	"filter.unread":            "Unread",
	"filter.orders":            "Orders",
	"filter.system":            "System",
	"analytics.title":          "Analytics",
	"analytics.subtitle":       "Key metrics across users, orders and revenue.",
	"analytics.revenue":        "Revenue by Quarter",
	"analytics.activity":       "Recent activity",
	"analytics.traffic":        "Weekly visits",
	"analytics.devices":        "Devices",
	"analytics.total_users":    "Users",
	"analytics.total_orders":   "Orders",
	"analytics.total_revenue":  "Revenue",
	"analytics.unread":         "Unread notifications",
	"settings.title":           "Settings",
	"settings.subtitle":        "Language and appearance preferences.",
	"settings.language":        "Language",
	"settings.theme":           "Theme",
	"settings.saved":           "Settings saved",
	"settings.invalid":         "Unsupported value",
	"theme.corporate":          "Corporate",
	"theme.modern":             "Modern",
	"theme.minimal":            "Minimal",
	"lang.en":                  "English",
	"lang.ar":                  "العربية",
}

var arabic = map[string]string{
	"app.name":            "لوحة التحكم",
	"nav.analytics":       "التحليلات",
	"nav.users":           "المستخدمون",
	"nav.orders":          "الطلبات",
	"nav.products":        "المنتجات",
	"nav.notifications":   "الإشعارات",
	"nav.settings":        "الإعدادات",
	"nav.logout":          "تسجيل الخروج",
	"common.search":       "بحث",
	"common.all":          "الكل",
	"common.page":         "صفحة",
	"common.of":           "من",
	"common.prev":         "السابق",
	"common.next":         "التالي",
	"common.actions":      "الإجراءات",
	"common.apply":        "تطبيق",
	"common.save":         "حفظ",
	"common.cancel":       "إلغاء",
	"common.no_results":   "لا توجد نتائج",
	"common.error":        "حدث خطأ ما",
	"topbar.mode_dark":    "الوضع الداكن",
	"topbar.mode_light":   "الوضع الفاتح",
	"topbar.sidebar":      "إظهار/إخفاء القائمة",
	"topbar.language":     "English",
	"login.title":         "تسجيل الدخول",
	"login.subtitle":      "استخدم حساب المسؤول للمتابعة.",
	"login.email":         "البريد الإلكتروني",
	"login.password":      "كلمة المرور",
	"login.submit":        "دخول",
	"login.invalid":       "بيانات الدخول غير صحيحة",
	"login.welcome":       "مرحباً بعودتك",
	"users.title":         "المستخدمون",
	"users.subtitle":      "إدارة الحسابات والأدوار وحالة الوصول.",
	"users.total":         "إجمالي المستخدمين",
	"users.active":        "المستخدمون النشطون",
	"users.admins":        "المسؤولون",
	"users.add":           "إضافة مستخدم",
	"users.edit":          "تعديل المستخدم",
	"users.delete":        "حذف",
	"users.id":            "المعرف",
	"users.name":          "الاسم",
	"users.email":         "البريد الإلكتروني",
	"users.role":          "الدور",
	"users.status":        "الحالة",
	"users.created":       "تاريخ الإنشاء",
	"users.export":        "تصدير CSV",
	"users.added":         "تمت إضافة المستخدم",
	"users.updated":       "تم تحديث المستخدم",
	"users.deleted":       "تم حذف المستخدم",
	"users.exported":      "تم تصدير المستخدمين إلى CSV",
	"role.Admin":          "مسؤول",
	"role.Manager":        "مدير",
	"role.User":           "مستخدم",
	"status.Active":       "نشط",
	"status.Suspended":    "موقوف",
	"status.Paid":         "مدفوع",
	"status.Pending":      "قيد الانتظار",
	"status.Cancelled":    "ملغى",
	"orders.title":        "الطلبات",
	"orders.subtitle":     "عرض وإدارة طلبات العملاء وحالات الدفع والشحن.",
	"orders.id":           "رقم الطلب",
	"orders.customer":     "العميل",
	"orders.amount":       "المبلغ",
	"orders.status":       "الحالة",
	"orders.date":         "التاريخ",
	"orders.view":         "عرض التفاصيل",
	"orders.export":       "تصدير CSV",
	"orders.exported":     "تم تصدير الطلبات إلى CSV",
	"orders.total":        "إجمالي الطلبات",
	"orders.revenue":      "إجمالي المبيعات",
	"orders.paid":         "الطلبات المدفوعة",
	"order.title":         "تفاصيل الطلب",
	"order.items":         "المنتجات",
	"order.qty":           "الكمية",
	"order.price":         "السعر",
	"order.line_total":    "الإجمالي",
	"order.payment":       "طريقة الدفع",
	"order.timeline":      "الخط الزمني",
	"order.back":          "العودة إلى الطلبات",
	"order.not_found":     "الطلب غير موجود",
	"order.not_found_msg": "الطلب الذي تبحث عنه غير موجود.",
	"products.title":      "المنتجات",
	"products.subtitle":   "تصفح الكتالوج والمخزون والتقييمات.",
	"products.sku":        "رمز المنتج",
	"products.name":       "الاسم",
	"products.category":   "الفئة",
	"products.price":      "السعر",
	"products.stock":      "المخزون",
	"products.rating":     "التقييم",
	"products.in_stock":   "متوفر",
	"products.out":        "غير متوفر",
	"products.total":      "إجمالي المنتجات",
	"products.in_count":   "منتجات متوفرة",
	"products.categories": "الفئات",
	"products.avg_price":  "متوسط السعر",
	"products.grid":       "شبكة",
	"products.table":      "جدول",
	"notifications.title":      "الإشعارات",
	"notifications.subtitle":   "عرض وإدارة جميع إشعارات النظام والطلبات والمستخدمين.",
	"notifications.mark_all":   "تعيين الكل كمقروء",
	"notifications.mark_read":  "تعيين كمقروء",
	"notifications.marked_all": "تم تعيين جميع الإشعارات كمقروءة",
	"toast.dismiss":            "إغلاق",
	"notifications.read":       "مقروء",
	"notifications.unread":     "غير مقروء",
	"notifications.empty":      "لا توجد إشعارات",
	"filter.all":               "الكل",
	"filter.unread":            "غير مقروءة",
	"filter.orders":            "الطلبات",
	"filter.system":            "النظام",
	"analytics.title":          "التحليلات",
	"analytics.subtitle":       "المؤشرات الرئيسية للمستخدمين والطلبات والإيرادات.",
	"analytics.revenue":        "الإيرادات حسب الربع",
	"analytics.activity":       "النشاط الأخير",
	"analytics.traffic":        "الزيارات الأسبوعية",
	"analytics.devices":        "الأجهزة",
	"analytics.total_users":    "المستخدمون",
	"analytics.total_orders":   "الطلبات",
	"analytics.total_revenue":  "الإيرادات",
	"analytics.unread":         "إشعارات غير مقروءة",
	"settings.title":           "الإعدادات",
	"settings.subtitle":        "تفضيلات اللغة والمظهر.",
	"settings.language":        "اللغة",
	"settings.theme":           "السمة",
	"settings.saved":           "تم حفظ الإعدادات",
	"settings.invalid":         "قيمة غير مدعومة",
	"theme.corporate":          "رسمي",
	"theme.modern":             "حديث",
	"theme.minimal":            "بسيط",
	"lang.en":                  "English",
	"lang.ar":                  "العربية",
}
