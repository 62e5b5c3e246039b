package constants

const (
	ROLE_ADMIN   = "ADMIN"
	ROLE_MANAGER = "MANAGER"
	ROLE_STAFF   = "STAFF"
)

const (
	ERROR_INPUT           = "Dữ liệu đầu vào không hợp lệ"
	ERROR_INTERNAL_ERROR  = "Lỗi hệ thống, vui lòng thử lại sau"
	ORDER_NOT_FOUND       = "Không tìm thấy đơn hàng"
	ORDER_MOVED_ON        = "Đơn hàng đã chuyển trạng thái khác, vui lòng tải lại và thử lại"
	ORDER_ACTION_UNKNOWN  = "Thao tác không hợp lệ"
	ORDER_CODE_DUPLICATED = "Mã đơn hàng đã tồn tại"
	NOT_ADMIN             = "Không có quyền thực hiện thao tác này"
)
