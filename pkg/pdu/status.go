package pdu

// Command status codes (SMPP 3.4 Section 5.1.3). Zero means success, or
// simply "request". The protocol mnemonic is noted beside each value.
const (
	StatusOK               uint32 = 0x00000000 // ESME_ROK
	StatusInvMsgLen        uint32 = 0x00000001 // ESME_RINVMSGLEN
	StatusInvCmdLen        uint32 = 0x00000002 // ESME_RINVCMDLEN
	StatusInvCmdID         uint32 = 0x00000003 // ESME_RINVCMDID
	StatusInvBindStatus    uint32 = 0x00000004 // ESME_RINVBNDSTS
	StatusAlreadyBound     uint32 = 0x00000005 // ESME_RALYBND
	StatusInvPriorityFlag  uint32 = 0x00000006 // ESME_RINVPRTFLG
	StatusInvRegDelivery   uint32 = 0x00000007 // ESME_RINVREGDLVFLG
	StatusSysErr           uint32 = 0x00000008 // ESME_RSYSERR
	StatusInvSrcAddr       uint32 = 0x0000000A // ESME_RINVSRCADR
	StatusInvDstAddr       uint32 = 0x0000000B // ESME_RINVDSTADR
	StatusInvMsgID         uint32 = 0x0000000C // ESME_RINVMSGID
	StatusBindFail         uint32 = 0x0000000D // ESME_RBINDFAIL
	StatusInvPassword      uint32 = 0x0000000E // ESME_RINVPASWD
	StatusInvSystemID      uint32 = 0x0000000F // ESME_RINVSYSID
	StatusCancelFail       uint32 = 0x00000011 // ESME_RCANCELFAIL
	StatusReplaceFail      uint32 = 0x00000013 // ESME_RREPLACEFAIL
	StatusMsgQueueFull     uint32 = 0x00000014 // ESME_RMSGQFUL
	StatusInvServiceType   uint32 = 0x00000015 // ESME_RINVSERTYP
	StatusInvNumDests      uint32 = 0x00000033 // ESME_RINVNUMDESTS
	StatusInvDistListName  uint32 = 0x00000034 // ESME_RINVDLNAME
	StatusInvDestFlag      uint32 = 0x00000040 // ESME_RINVDESTFLAG
	StatusInvSubmitReplace uint32 = 0x00000042 // ESME_RINVSUBREP
	StatusInvEsmClass      uint32 = 0x00000043 // ESME_RINVESMCLASS
	StatusCannotSubmitDL   uint32 = 0x00000044 // ESME_RCNTSUBDL
	StatusSubmitFail       uint32 = 0x00000045 // ESME_RSUBMITFAIL
	StatusInvSrcTON        uint32 = 0x00000048 // ESME_RINVSRCTON
	StatusInvSrcNPI        uint32 = 0x00000049 // ESME_RINVSRCNPI
	StatusInvDstTON        uint32 = 0x00000050 // ESME_RINVDSTTON
	StatusInvDstNPI        uint32 = 0x00000051 // ESME_RINVDSTNPI
	StatusInvSystemType    uint32 = 0x00000053 // ESME_RINVSYSTYP
	StatusInvReplaceFlag   uint32 = 0x00000054 // ESME_RINVREPFLAG
	StatusInvNumMsgs       uint32 = 0x00000055 // ESME_RINVNUMMSGS
	StatusThrottled        uint32 = 0x00000058 // ESME_RTHROTTLED
	StatusInvSchedule      uint32 = 0x00000061 // ESME_RINVSCHED
	StatusInvExpiry        uint32 = 0x00000062 // ESME_RINVEXPIRY
	StatusInvDefaultMsgID  uint32 = 0x00000063 // ESME_RINVDFTMSGID
	StatusRxTempAppErr     uint32 = 0x00000064 // ESME_RX_T_APPN
	StatusRxPermAppErr     uint32 = 0x00000065 // ESME_RX_P_APPN
	StatusRxRejectedMsg    uint32 = 0x00000066 // ESME_RX_R_APPN
	StatusQueryFail        uint32 = 0x00000067 // ESME_RQUERYFAIL
	StatusInvOptParamsLen  uint32 = 0x000000C0 // ESME_RINVOPTPARSTREAM
	StatusOptParamNotAllwd uint32 = 0x000000C1 // ESME_ROPTPARNOTALLWD
	StatusInvParamLen      uint32 = 0x000000C2 // ESME_RINVPARLEN
	StatusMissingOptParam  uint32 = 0x000000C3 // ESME_RMISSINGOPTPARAM
	StatusInvOptParamVal   uint32 = 0x000000C4 // ESME_RINVOPTPARAMVAL
	StatusDeliveryFailure  uint32 = 0x000000FE // ESME_RDELIVERYFAILURE
	StatusUnknownErr       uint32 = 0x000000FF // ESME_RUNKNOWNERR
)

// Status maps a parse failure to the command_status an error response toward
// the peer should carry.
func (e *ParseError) Status() uint32 {
	switch e.Kind {
	case LengthTooShort, LengthTooLong:
		return StatusInvCmdLen
	case UnknownCommandID:
		return StatusInvCmdID
	case NotEnoughBytes, LengthLongerThanPdu:
		return StatusInvMsgLen
	default:
		return StatusSysErr
	}
}
